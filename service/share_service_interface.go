package service

// ShareServiceInterface defines the contract for handing a generated PDF to
// the share collaborator
type ShareServiceInterface interface {
	Share(filePath, title string) (string, error)
}

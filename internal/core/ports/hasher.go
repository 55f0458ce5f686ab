package ports

// Hasher defines the interface for computing file digests.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFile returns the hex encoded digest of the file content.
	HashFile(path string) (string, error)
}

package crypto

import "os"

// readFile reads a file fully. Thin wrapper kept separate so the cipher
// wrappers stay testable without touching the OS in unit tests.
func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// writeFile writes data with owner-only permissions.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0600)
}

package inistore

import "os"

func fileRead(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func fileWrite(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

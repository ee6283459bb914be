package main

import (
	"fmt"

	"github.com/nmkeyfile/keyfile/pkg/model"
)

// basicVerifier is the CLI's own stand-in for the embedder-supplied
// connection validator the write entry point expects: it only checks the
// handful of invariants the codec itself relies on, not full
// NetworkManager-equivalent connection validation.
func basicVerifier(conn *model.Connection) error {
	connSetting, ok := conn.Setting("connection")
	if !ok {
		return fmt.Errorf("connection is missing its [connection] setting")
	}
	id, _ := connSetting.Get("id")
	if id == "" {
		return fmt.Errorf("connection.id must not be empty")
	}
	typ, _ := connSetting.Get("type")
	if typ == "" {
		return fmt.Errorf("connection.type must not be empty")
	}
	return nil
}

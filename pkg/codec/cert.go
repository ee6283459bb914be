package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// CertKind discriminates the four-way tagged union a certificate
// property can take: a path, a pkcs11 URI, an inline blob, or unknown.
type CertKind int

const (
	CertUnknown CertKind = iota
	CertPath
	CertPkcs11
	CertBlob
)

// Cert is the decoded, in-memory certificate value.
type Cert struct {
	Kind CertKind
	Path string // absolute, for CertPath
	URI  string // for CertPkcs11
	Blob []byte // for CertBlob
}

const (
	certPrefixFile   = "file://"
	certPrefixPkcs11 = "pkcs11:"
	certPrefixData   = "data:;base64,"

	bareCertPathMaxLen = 500
)

var bareCertPathExtensions = []string{".pem", ".cert", ".crt", ".cer", ".p12", ".der", ".key"}

// DecodeCert classifies raw per the four-way scheme above. baseDir
// resolves relative paths. A missing Path-scheme file issues
// INFO_MISSING_FILE (accepted); an empty or invalid Blob issues WARN and
// aborts read of this property.
func DecodeCert(ctx *Context, raw []byte, baseDir string) (Cert, error) {
	switch {
	case bytes.HasPrefix(raw, []byte(certPrefixFile)):
		return decodeCertPath(ctx, string(raw[len(certPrefixFile):]), baseDir)
	case bytes.HasPrefix(raw, []byte(certPrefixPkcs11)):
		if len(raw) == len(certPrefixPkcs11) {
			if werr := ctx.Warn(SeverityWarn, "empty pkcs11 URI"); werr != nil {
				return Cert{}, werr
			}
			return Cert{Kind: CertUnknown}, nil
		}
		return Cert{Kind: CertPkcs11, URI: string(raw)}, nil
	case bytes.HasPrefix(raw, []byte(certPrefixData)):
		payload := string(raw[len(certPrefixData):])
		blob, err := DecodeBase64Strict(payload)
		if err != nil {
			if werr := ctx.Warn(SeverityWarn, "invalid certificate base64 payload: %v", err); werr != nil {
				return Cert{}, werr
			}
			return Cert{Kind: CertUnknown}, nil
		}
		return Cert{Kind: CertBlob, Blob: blob}, nil
	default:
		return decodeCertBarePath(ctx, raw, baseDir)
	}
}

func decodeCertPath(ctx *Context, pathPart string, baseDir string) (Cert, error) {
	// The on-disk form is NUL-terminated; trim any trailing NUL bytes.
	for len(pathPart) > 0 && pathPart[len(pathPart)-1] == 0 {
		pathPart = pathPart[:len(pathPart)-1]
	}
	abs := pathPart
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(baseDir, abs)
	}
	if _, err := os.Stat(abs); err != nil {
		if werr := ctx.Warn(SeverityInfoMissingFile, "certificate path %q does not exist", abs); werr != nil {
			return Cert{}, werr
		}
	}
	return Cert{Kind: CertPath, Path: abs}, nil
}

func decodeCertBarePath(ctx *Context, raw []byte, baseDir string) (Cert, error) {
	if len(raw) >= 1 && len(raw) <= bareCertPathMaxLen && utf8.Valid(raw) {
		s := string(raw)
		if hasPathShape(s) {
			return decodeCertPath(ctx, s, baseDir)
		}
	}
	return Cert{Kind: CertBlob, Blob: raw}, nil
}

func hasPathShape(s string) bool {
	for _, r := range s {
		if r == '/' {
			return true
		}
	}
	for _, ext := range bareCertPathExtensions {
		if len(s) >= len(ext) && s[len(s)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// EncodeCert reverses DecodeCert for the write path.
func EncodeCert(c Cert) []byte {
	switch c.Kind {
	case CertPath:
		abs := c.Path
		if !filepath.IsAbs(abs) {
			if cwd, err := os.Getwd(); err == nil {
				abs = filepath.Join(cwd, abs)
			}
		}
		return []byte(certPrefixFile + abs)
	case CertBlob:
		return []byte(certPrefixData + EncodeBase64(c.Blob))
	case CertPkcs11:
		return []byte(c.URI)
	default:
		return nil
	}
}

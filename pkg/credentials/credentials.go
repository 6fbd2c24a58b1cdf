// Package credentials implements the credential store: entries keyed by
// (service, URL prefix) resolving to the most-specific match, and
// at-rest encryption of coordinator-local file-backed secrets using the
// same AES-256-GCM scheme the rest of this codebase family uses for
// secret material.
package credentials

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/cuemby/gridworks/pkg/types"
)

// Store holds credential entries in insertion order. Reads (Resolve) and
// writes (Add) both take the same short mutex; reads are not lock-free.
type Store struct {
	mu            sync.Mutex
	entries       []types.CredentialEntry
	nextInsertion int
	encryptionKey []byte // 32 bytes, AES-256
}

// NewStore creates a credential store. key must be exactly 32 bytes.
func NewStore(key []byte) (*Store, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("credentials: encryption key must be 32 bytes, got %d", len(key))
	}
	return &Store{encryptionKey: key}, nil
}

// NewStoreFromPassphrase derives a 32-byte key from an arbitrary
// passphrase via SHA-256, for deployments that configure a passphrase
// rather than generating a raw key.
func NewStoreFromPassphrase(passphrase string) (*Store, error) {
	sum := sha256.Sum256([]byte(passphrase))
	return NewStore(sum[:])
}

// Add registers a (service, urlPrefix) -> source mapping. Later entries
// with equal specificity lose ties to earlier ones (insertion order).
func (s *Store) Add(service types.CredentialServiceKind, urlPrefix string, source types.CredentialSource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source.CoordinatorFilePath = strings.TrimSpace(source.CoordinatorFilePath)
	entry := types.CredentialEntry{
		Service:   service,
		URLPrefix: urlPrefix,
		Source:    source,
	}
	s.entries = append(s.entries, entry)
	s.nextInsertion++
}

// Resolve returns the decrypted/looked-up credential bytes for the
// most-specific (longest URLPrefix) entry matching service+url. Ties on
// prefix length are broken by insertion order (earliest wins).
func (s *Store) Resolve(service types.CredentialServiceKind, url string) (*types.ResolvedCredential, error) {
	s.mu.Lock()
	var best *types.CredentialEntry
	for i := range s.entries {
		e := &s.entries[i]
		if e.Service != service {
			continue
		}
		if !strings.HasPrefix(url, e.URLPrefix) {
			continue
		}
		if best == nil || len(e.URLPrefix) > len(best.URLPrefix) {
			best = e
		}
	}
	s.mu.Unlock()

	if best == nil {
		return nil, nil
	}
	return s.materialize(best.Source)
}

func (s *Store) materialize(source types.CredentialSource) (*types.ResolvedCredential, error) {
	if source.IsSecretManagerRef() {
		// Inline secret-manager fetch: abstracted behind this call so a
		// real deployment can plug in a vault/secrets-manager client
		// without this package knowing about it.
		return fetchFromSecretManager(source.SecretName)
	}

	ciphertext, err := os.ReadFile(source.CoordinatorFilePath)
	if err != nil {
		return nil, fmt.Errorf("credentials: reading %s: %w", source.CoordinatorFilePath, err)
	}
	plaintext, err := s.decrypt(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("credentials: decrypting %s: %w", source.CoordinatorFilePath, err)
	}
	return &types.ResolvedCredential{Type: classify(plaintext), Data: plaintext}, nil
}

// EncryptToFile encrypts data and writes it to path, for operators
// provisioning coordinator-local credential files.
func (s *Store) EncryptToFile(path string, data []byte) error {
	ciphertext, err := s.encrypt(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, ciphertext, 0o600)
}

func (s *Store) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *Store) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("credentials: ciphertext too short")
	}
	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, sealed, nil)
}

// classify guesses the credential type from its shape: SSH private keys
// carry a recognizable PEM header, everything else is treated as a
// username:password pair.
func classify(data []byte) types.CredentialType {
	if strings.Contains(string(data), "PRIVATE KEY") {
		return types.CredentialTypeSSHKey
	}
	return types.CredentialTypeUsernamePassword
}

// fetchFromSecretManager is the seam for an external secret-manager
// integration. No such integration ships in this prototype; returning
// an error here is correct until one is wired in.
func fetchFromSecretManager(secretName string) (*types.ResolvedCredential, error) {
	return nil, fmt.Errorf("credentials: no secret manager backend configured for %q", secretName)
}

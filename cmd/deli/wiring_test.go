package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"deli-cious/internal/config"
	"deli-cious/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSignatures(t *testing.T) {
	signatures, err := loadSignatures(config.MenuConfig{})
	require.NoError(t, err)
	assert.Equal(t, 2, signatures.Len())

	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
signatures:
  - name: Veggie Wrap
    size: "12"
    bread: wrap
    toppings:
      - number: 11
      - number: 18
`), 0o644))

	signatures, err = loadSignatures(config.MenuConfig{File: path})
	require.NoError(t, err)
	require.Equal(t, 1, signatures.Len())
	assert.Equal(t, "Veggie Wrap", signatures.Signatures[0].Name)

	_, err = loadSignatures(config.MenuConfig{File: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestNewReceiptStore_LocalOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Receipts: config.ReceiptsConfig{Dir: dir},
	}

	store, cleanup, err := newReceiptStore(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer cleanup()

	order := model.NewOrder()
	order.Add(model.NewChips("Plain"))
	rcpt := model.NewReceipt(order, model.PaymentCash, time.Now())

	location, err := store.Save(context.Background(), rcpt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, rcpt.FileName()), location)
}

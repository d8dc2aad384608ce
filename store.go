package cashbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store locates the cash book's three files on disk: the transaction log, the
// settings, and the daily close history. Missing files read as empty, so a
// fresh directory is a valid cash book.
type Store struct {
	CashBookFile string
	SettingsFile string
	ClosesFile   string
}

// DefaultStore returns the store rooted at dir with the conventional file names.
func DefaultStore(dir string) Store {
	return Store{
		CashBookFile: filepath.Join(dir, "cashbook.jsonl"),
		SettingsFile: filepath.Join(dir, "settings.json"),
		ClosesFile:   filepath.Join(dir, "closes.jsonl"),
	}
}

// LoadLedger opens and decodes the transaction log. A missing file yields an
// empty ledger.
func (s Store) LoadLedger() (*Ledger, error) {
	f, err := os.Open(s.CashBookFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open cash book file %q: %w", s.CashBookFile, err)
	}
	defer f.Close()

	ledger, err := DecodeCashBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode cash book file %q: %w", s.CashBookFile, err)
	}
	return ledger, nil
}

// SaveLedger rewrites the whole transaction log in chronological order.
func (s Store) SaveLedger(ledger *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(s.CashBookFile), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", s.CashBookFile, err)
	}
	f, err := os.Create(s.CashBookFile)
	if err != nil {
		return fmt.Errorf("error opening cash book file %q for writing: %w", s.CashBookFile, err)
	}
	defer f.Close()
	return EncodeCashBook(f, ledger)
}

// AppendTransaction validates a transaction and appends it as one line to the
// transaction log, creating the file if needed.
func (s Store) AppendTransaction(tx Transaction) (Transaction, error) {
	tx, err := Validate(tx)
	if err != nil {
		return tx, err
	}
	if err := os.MkdirAll(filepath.Dir(s.CashBookFile), 0755); err != nil {
		return tx, fmt.Errorf("could not create directory for %q: %w", s.CashBookFile, err)
	}
	f, err := os.OpenFile(s.CashBookFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return tx, fmt.Errorf("error opening cash book file %q for append: %w", s.CashBookFile, err)
	}
	defer f.Close()
	if err := EncodeTransaction(f, tx); err != nil {
		return tx, err
	}
	return tx, nil
}

// LoadSettings reads the settings file. A missing file yields empty settings.
func (s Store) LoadSettings() (Settings, error) {
	f, err := os.Open(s.SettingsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewSettings(), nil
		}
		return nil, fmt.Errorf("could not open settings file %q: %w", s.SettingsFile, err)
	}
	defer f.Close()
	settings, err := DecodeSettings(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode settings file %q: %w", s.SettingsFile, err)
	}
	return settings, nil
}

// SaveSettings rewrites the settings file.
func (s Store) SaveSettings(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.SettingsFile), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", s.SettingsFile, err)
	}
	f, err := os.Create(s.SettingsFile)
	if err != nil {
		return fmt.Errorf("error opening settings file %q for writing: %w", s.SettingsFile, err)
	}
	defer f.Close()
	return EncodeSettings(f, settings)
}

// AppendDailyClose appends one close record to the history file.
func (s Store) AppendDailyClose(c DailyClose) error {
	if err := os.MkdirAll(filepath.Dir(s.ClosesFile), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", s.ClosesFile, err)
	}
	f, err := os.OpenFile(s.ClosesFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening closes file %q for append: %w", s.ClosesFile, err)
	}
	defer f.Close()
	return EncodeDailyClose(f, c)
}

// LoadDailyCloses reads the close history. A missing file yields nil.
func (s Store) LoadDailyCloses() ([]DailyClose, error) {
	f, err := os.Open(s.ClosesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not open closes file %q: %w", s.ClosesFile, err)
	}
	defer f.Close()
	closes, err := DecodeDailyCloses(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode closes file %q: %w", s.ClosesFile, err)
	}
	return closes, nil
}

// Package seed loads a chart of accounts and the accounting settings from a YAML file
// and stores them through the repositories.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"gopkg.in/yaml.v3"
)

// ErrSeedFileNotFound is returned when the seed file does not exist.
var ErrSeedFileNotFound = errors.New("seed: file not found")

// ChartAccount is one account of the chart. Active defaults to true.
type ChartAccount struct {
	Code       int    `yaml:"code"`
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Parent     bool   `yaml:"parent,omitempty"`
	ParentCode *int   `yaml:"parentCode,omitempty"`
	Active     *bool  `yaml:"active,omitempty"`
}

func (a ChartAccount) isActive() bool {
	return a.Active == nil || *a.Active
}

// File is the root of a seed document. Account settings name account codes;
// auto_post_entries takes a boolean.
type File struct {
	Accounts []ChartAccount    `yaml:"accounts"`
	Settings map[string]string `yaml:"settings,omitempty"`
}

// LoadFile reads and validates a seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSeedFileNotFound, path)
		}
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes and validates the result. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: parsing seed file: %v", apperrors.ErrValidation, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks codes, types, parent links and setting keys.
func (f *File) Validate() error {
	byCode := make(map[int]ChartAccount, len(f.Accounts))
	for _, a := range f.Accounts {
		if a.Code <= 0 {
			return validationErr("account %q: code must be positive", a.Name)
		}
		if strings.TrimSpace(a.Name) == "" {
			return validationErr("account %d: name is required", a.Code)
		}
		if !domain.AccountType(a.Type).IsValid() {
			return validationErr("account %d: unknown type %q", a.Code, a.Type)
		}
		if _, dup := byCode[a.Code]; dup {
			return validationErr("account code %d is duplicated", a.Code)
		}
		byCode[a.Code] = a
	}

	for _, a := range f.Accounts {
		if a.ParentCode == nil {
			continue
		}
		parent, ok := byCode[*a.ParentCode]
		if !ok {
			return validationErr("account %d: parent code %d does not exist", a.Code, *a.ParentCode)
		}
		if !parent.Parent {
			return validationErr("account %d: parent %d is not a parent account", a.Code, parent.Code)
		}
	}
	if _, err := f.orderedAccounts(); err != nil {
		return err
	}

	for rawKey, value := range f.Settings {
		key := domain.SettingKey(rawKey)
		if !key.IsKnown() {
			return validationErr("unknown setting key %q", rawKey)
		}
		if key == domain.AutoPostEntriesKey {
			if _, err := strconv.ParseBool(value); err != nil {
				return validationErr("%s must be a boolean, got %q", rawKey, value)
			}
			continue
		}
		code, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return validationErr("%s must be an account code, got %q", rawKey, value)
		}
		acc, ok := byCode[code]
		if !ok {
			return validationErr("%s refers to unknown account code %d", rawKey, code)
		}
		if acc.Parent || !acc.isActive() {
			return validationErr("%s refers to account %d which cannot be posted to", rawKey, code)
		}
	}
	return nil
}

// orderedAccounts returns the accounts with every parent before its children.
func (f *File) orderedAccounts() ([]ChartAccount, error) {
	byCode := make(map[int]ChartAccount, len(f.Accounts))
	for _, a := range f.Accounts {
		byCode[a.Code] = a
	}

	depth := make(map[int]int, len(f.Accounts))
	var depthOf func(code int, seen map[int]bool) (int, error)
	depthOf = func(code int, seen map[int]bool) (int, error) {
		if d, ok := depth[code]; ok {
			return d, nil
		}
		if seen[code] {
			return 0, validationErr("account %d is part of a parent cycle", code)
		}
		seen[code] = true
		a := byCode[code]
		d := 0
		if a.ParentCode != nil {
			pd, err := depthOf(*a.ParentCode, seen)
			if err != nil {
				return 0, err
			}
			d = pd + 1
		}
		depth[code] = d
		return d, nil
	}

	ordered := make([]ChartAccount, len(f.Accounts))
	copy(ordered, f.Accounts)
	for _, a := range ordered {
		if _, err := depthOf(a.Code, map[int]bool{}); err != nil {
			return nil, err
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if depth[ordered[i].Code] != depth[ordered[j].Code] {
			return depth[ordered[i].Code] < depth[ordered[j].Code]
		}
		return ordered[i].Code < ordered[j].Code
	})
	return ordered, nil
}

// Summary reports what Apply stored.
type Summary struct {
	Accounts int
	Settings int
}

// Seeder writes a validated seed file through the repositories.
type Seeder struct {
	store  portsrepo.ChartWriter
	logger *slog.Logger
	now    func() time.Time
}

// NewSeeder creates a Seeder.
func NewSeeder(store portsrepo.ChartWriter, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{store: store, logger: logger, now: time.Now}
}

// Apply upserts every account, parents first, then the settings, all in one transaction.
// Account settings are stored as the database id of the named account code. Nothing is
// stored when any write fails, and re-running Apply is idempotent.
func (s *Seeder) Apply(ctx context.Context, f *File, userID string) (Summary, error) {
	ordered, err := f.orderedAccounts()
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	err = s.store.WithinTx(ctx, func(accounts portsrepo.AccountWriter, settings portsrepo.SettingsWriter) error {
		summary = Summary{}
		ids, err := s.applyAccounts(ctx, accounts, ordered, userID, &summary)
		if err != nil {
			return err
		}
		return s.applySettings(ctx, settings, f.Settings, ids, &summary)
	})
	if err != nil {
		return Summary{}, err
	}

	s.logger.Info("Seed applied", slog.Int("accounts", summary.Accounts), slog.Int("settings", summary.Settings))
	return summary, nil
}

func (s *Seeder) applyAccounts(ctx context.Context, accounts portsrepo.AccountWriter, ordered []ChartAccount, userID string, summary *Summary) (map[int]int64, error) {
	now := s.now().UTC()
	ids := make(map[int]int64, len(ordered))
	for _, def := range ordered {
		acc := &domain.Account{
			Code:        def.Code,
			Name:        def.Name,
			AccountType: domain.AccountType(def.Type),
			IsParent:    def.Parent,
			IsActive:    def.isActive(),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if def.ParentCode != nil {
			parentID := ids[*def.ParentCode]
			acc.ParentAccountID = &parentID
		}
		if err := accounts.SaveAccount(ctx, acc); err != nil {
			return nil, fmt.Errorf("seeding account %d: %w", def.Code, err)
		}
		ids[def.Code] = acc.AccountID
		summary.Accounts++
		s.logger.Debug("Seeded account", slog.Int("code", def.Code), slog.Int64("account_id", acc.AccountID))
	}
	return ids, nil
}

func (s *Seeder) applySettings(ctx context.Context, settings portsrepo.SettingsWriter, values map[string]string, ids map[int]int64, summary *Summary) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, rawKey := range keys {
		key := domain.SettingKey(rawKey)
		value := strings.TrimSpace(values[rawKey])
		if key == domain.AutoPostEntriesKey {
			on, _ := strconv.ParseBool(value)
			value = "0"
			if on {
				value = "1"
			}
		} else {
			code, _ := strconv.Atoi(value)
			value = strconv.FormatInt(ids[code], 10)
		}
		if err := settings.SaveSetting(ctx, key, &value); err != nil {
			return fmt.Errorf("seeding setting %s: %w", rawKey, err)
		}
		summary.Settings++
	}
	return nil
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

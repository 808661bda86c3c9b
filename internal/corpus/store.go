package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/verobrix/verobrix/internal/model"
)

// Store is the read-only collection of legal-authority records. It is
// loaded once at startup and safely shared across concurrent sessions.
type Store struct {
	cases      []model.Record
	statutes   []model.Record
	provisions []model.Record
	affidavits []model.Record
}

// recordFiles maps corpus filenames to the kind stamped on their records
var recordFiles = map[string]model.RecordKind{
	"case_law.yaml":       model.KindCaseLaw,
	"statutes.yaml":       model.KindStatute,
	"constitutional.yaml": model.KindConstitutional,
	"affidavits.yaml":     model.KindAffidavit,
}

// NewStore loads the corpus from dir. A missing directory or file
// degrades to the built-in essential records rather than failing.
func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{}

	for filename, kind := range recordFiles {
		records, err := loadRecordFile(filepath.Join(dir, filename), kind)
		if err != nil {
			logger.Warn("corpus file unavailable, using built-in records",
				zap.String("file", filename),
				zap.Error(err))
			records = builtinRecords(kind)
		}
		if len(records) == 0 {
			records = builtinRecords(kind)
		}
		s.setRecords(kind, records)
	}

	logger.Info("legal corpus loaded",
		zap.Int("case_law", len(s.cases)),
		zap.Int("statutes", len(s.statutes)),
		zap.Int("constitutional", len(s.provisions)),
		zap.Int("affidavits", len(s.affidavits)))

	return s
}

// NewBuiltinStore returns a store backed only by the built-in records
func NewBuiltinStore() *Store {
	s := &Store{}
	for _, kind := range []model.RecordKind{model.KindCaseLaw, model.KindStatute, model.KindConstitutional, model.KindAffidavit} {
		s.setRecords(kind, builtinRecords(kind))
	}
	return s
}

func (s *Store) setRecords(kind model.RecordKind, records []model.Record) {
	switch kind {
	case model.KindCaseLaw:
		s.cases = records
	case model.KindStatute:
		s.statutes = records
	case model.KindConstitutional:
		s.provisions = records
	case model.KindAffidavit:
		s.affidavits = records
	}
}

// loadRecordFile reads one YAML record file and stamps the kind
func loadRecordFile(path string, kind model.RecordKind) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	for i := range records {
		records[i].Kind = kind
	}
	return records, nil
}

// CaseLaw returns the case-law records in load order
func (s *Store) CaseLaw() []model.Record { return s.cases }

// Statutes returns the statute records in load order
func (s *Store) Statutes() []model.Record { return s.statutes }

// Constitutional returns the constitutional provisions in load order
func (s *Store) Constitutional() []model.Record { return s.provisions }

// Affidavits returns the model affidavit templates in load order
func (s *Store) Affidavits() []model.Record { return s.affidavits }

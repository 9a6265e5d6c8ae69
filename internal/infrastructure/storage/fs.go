package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/gridcheck/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func kindDir(k domain.Kind) string {
	switch k {
	case domain.KindIPv4:
		return "ipv4"
	default:
		return "boards"
	}
}

func (s *FS) pathFor(id string, k domain.Kind) string {
	sub := kindDir(k)
	return filepath.Join(s.dir, sub, strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, sub *domain.Submission) error {
	if sub == nil || sub.ID == "" {
		return errors.New("invalid submission: missing ID")
	}
	// Ensure directory ./data/{kind} exists
	target := s.pathFor(sub.ID, sub.Kind)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sub)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Submission, error) {
	type cand struct {
		path string
		kind domain.Kind
	}
	candidates := []cand{
		{filepath.Join(s.dir, "boards", id+".json"), domain.KindBoard},
		{filepath.Join(s.dir, "ipv4", id+".json"), domain.KindIPv4},
	}
	var data []byte
	var chosen *cand
	for i := range candidates {
		c := candidates[i]
		if _, statErr := os.Stat(c.path); statErr == nil {
			b, err := os.ReadFile(c.path)
			if err != nil {
				return nil, err
			}
			data = b
			chosen = &c
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Submission
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	// If the kind field is absent, infer it from the folder we loaded from.
	if out.Kind == 0 && chosen != nil {
		out.Kind = chosen.kind
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.SubmissionMeta, error) {
	type m struct {
		ID        string      `json:"id"`
		Name      string      `json:"name,omitempty"`
		Kind      domain.Kind `json:"kind"`
		Valid     bool        `json:"valid"`
		CreatedAt int64       `json:"createdAt"`
	}

	var out []domain.SubmissionMeta
	// scan subfolders by kind
	type bucket struct {
		path string
		kind domain.Kind
	}
	buckets := []bucket{
		{filepath.Join(s.dir, "boards"), domain.KindBoard},
		{filepath.Join(s.dir, "ipv4"), domain.KindIPv4},
	}

	for _, b := range buckets {
		ents, err := os.ReadDir(b.path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if !strings.HasSuffix(name, ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(b.path, name))
			if err != nil {
				continue
			}
			var mm m
			if err := json.Unmarshal(data, &mm); err != nil || mm.ID == "" {
				continue
			}
			out = append(out, domain.SubmissionMeta{
				ID:        mm.ID,
				Name:      mm.Name,
				Kind:      b.kind,
				Valid:     mm.Valid,
				CreatedAt: mm.CreatedAt,
			})
		}
	}
	return out, nil
}

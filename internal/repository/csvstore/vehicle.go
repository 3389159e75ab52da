// Package csvstore implements a vehicle repository backed by a
// comma-delimited inventory file. The full record set lives in memory and
// the file is rewritten in full after every mutation.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"carrental-backend/internal/domain"
)

// The persisted format is exactly these six columns in this order,
// regardless of extra columns present at load time.
var columns = []string{"id", "make", "model", "year", "available", "price"}

type VehicleRepository struct {
	mu    sync.Mutex
	path  string
	byID  map[string]*domain.Vehicle
	order []string
}

// NewVehicleRepository loads the inventory file at path. When the file is
// missing or malformed the repository is still returned, empty and usable,
// alongside an error wrapping domain.ErrSourceUnreadable.
func NewVehicleRepository(path string) (*VehicleRepository, error) {
	r := &VehicleRepository{
		path: path,
		byID: make(map[string]*domain.Vehicle),
	}
	if err := r.load(); err != nil {
		r.byID = make(map[string]*domain.Vehicle)
		r.order = nil
		return r, fmt.Errorf("%w: %v", domain.ErrSourceUnreadable, err)
	}
	return r, nil
}

func (r *VehicleRepository) load() error {
	f, err := os.Open(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("missing header row: %v", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "make", "model", "year", "available"} {
		if _, ok := index[required]; !ok {
			return fmt.Errorf("missing column %q", required)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return err
	}

	for n, row := range rows {
		v, err := parseRow(row, index)
		if err != nil {
			return fmt.Errorf("row %d: %v", n+2, err)
		}
		if _, ok := r.byID[v.ID]; ok {
			return fmt.Errorf("row %d: %v: %s", n+2, domain.ErrDuplicateVehicleID, v.ID)
		}
		r.byID[v.ID] = v
		r.order = append(r.order, v.ID)
	}
	return nil
}

func parseRow(row []string, index map[string]int) (*domain.Vehicle, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	id := field("id")
	if id == "" {
		return nil, fmt.Errorf("empty id")
	}

	year, err := strconv.ParseInt(field("year"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", field("year"))
	}

	available, err := parseAvailability(field("available"))
	if err != nil {
		return nil, err
	}

	price := domain.DefaultPricePerDay
	if raw := field("price"); raw != "" {
		p, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || p < 0 {
			return nil, fmt.Errorf("invalid price %q", raw)
		}
		price = int32(p)
	}

	return &domain.Vehicle{
		ID:          id,
		Make:        field("make"),
		Model:       field("model"),
		Year:        int32(year),
		PricePerDay: price,
		Available:   available,
	}, nil
}

func parseAvailability(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid availability token %q", token)
}

// save rewrites the whole inventory file. The write goes to a temp file
// first and is renamed into place so a crash mid-write cannot leave a
// half-written inventory behind.
func (r *VehicleRepository) save() error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".inventory-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(columns); err != nil {
		tmp.Close()
		return err
	}
	for _, id := range r.order {
		v := r.byID[id]
		available := "no"
		if v.Available {
			available = "yes"
		}
		record := []string{
			v.ID,
			v.Make,
			v.Model,
			strconv.FormatInt(int64(v.Year), 10),
			available,
			strconv.FormatInt(int64(v.PricePerDay), 10),
		}
		if err := writer.Write(record); err != nil {
			tmp.Close()
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[vehicle.ID]; ok {
		return domain.ErrDuplicateVehicleID
	}
	v := *vehicle
	r.byID[v.ID] = &v
	r.order = append(r.order, v.ID)

	if err := r.save(); err != nil {
		delete(r.byID, v.ID)
		r.order = r.order[:len(r.order)-1]
		return fmt.Errorf("failed to persist inventory: %w", err)
	}
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	out := *v
	return &out, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicles := make([]domain.Vehicle, 0, len(r.order))
	for _, id := range r.order {
		vehicles = append(vehicles, *r.byID[id])
	}
	return vehicles, nil
}

func (r *VehicleRepository) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var vehicles []domain.Vehicle
	for _, id := range r.order {
		if v := r.byID[id]; v.Available {
			vehicles = append(vehicles, *v)
		}
	}
	return vehicles, nil
}

func (r *VehicleRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return domain.ErrVehicleNotFound
	}
	previous := v.Available
	v.Available = available

	if err := r.save(); err != nil {
		v.Available = previous
		return fmt.Errorf("failed to persist inventory: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"adopet-backend/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	pics, err := marshalPictures(a.Pictures)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO animals (
			id, owner_id,
			name, type, gender, race, description,
			pictures, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.OwnerID,
		a.Name,
		a.Type,
		a.Gender,
		a.Race,
		a.Description,
		pics,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_id,
			name, type, gender, race, description,
			pictures, status,
			created_at, updated_at
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

// UpdateStatus pisa solo status + updated_at. Last-write-wins si dos
// updates al mismo id corren en paralelo (sin columna de versión).
func (r *AnimalsRepo) UpdateStatus(ctx context.Context, id string, status animals.Status, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET status = $2, updated_at = $3
		WHERE id = $1
	`, id, string(status), updatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) ListByOwner(ctx context.Context, ownerID string) ([]animals.Animal, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_id,
			name, type, gender, race, description,
			pictures, status,
			created_at, updated_at
		FROM animals
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAnimals(rows)
}

func (r *AnimalsRepo) ListAvailable(ctx context.Context, excludeOwnerID string, f animals.Filter) ([]animals.Animal, error) {
	// Base query
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, owner_id,
			name, type, gender, race, description,
			pictures, status,
			created_at, updated_at
		FROM animals
		WHERE status = $1 AND owner_id <> $2
	`)

	args := []any{string(animals.StatusAvailable), excludeOwnerID}
	argN := 3

	// type/gender: igualdad case-insensitive
	if f.Type != "" {
		sb.WriteString(fmt.Sprintf(" AND lower(type) = lower($%d)", argN))
		args = append(args, f.Type)
		argN++
	}
	if f.Gender != "" {
		sb.WriteString(fmt.Sprintf(" AND lower(gender) = lower($%d)", argN))
		args = append(args, f.Gender)
		argN++
	}

	// name: substring case-insensitive
	if f.Name != "" {
		sb.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argN))
		args = append(args, "%"+f.Name+"%")
		argN++
	}

	sb.WriteString(" ORDER BY created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAnimals(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var pics []byte
	var status string

	if err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Name,
		&a.Type,
		&a.Gender,
		&a.Race,
		&a.Description,
		&pics,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	a.Status = animals.Status(status)
	if len(pics) > 0 {
		if err := json.Unmarshal(pics, &a.Pictures); err != nil {
			return animals.Animal{}, err
		}
	}
	if a.Pictures == nil {
		a.Pictures = []string{}
	}

	return a, nil
}

func collectAnimals(rows *sql.Rows) ([]animals.Animal, error) {
	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// pictures es jsonb: una lista ordenada de referencias al media store.
// Un slice nil se guarda como [] para no tener null en la columna.
func marshalPictures(pics []string) ([]byte, error) {
	if pics == nil {
		pics = []string{}
	}
	return json.Marshal(pics)
}

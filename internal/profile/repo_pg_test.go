package profile

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertSerializesPartners(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	p := BusinessProfile{
		SessionID:    "sess-1",
		UserID:       "user-1",
		BusinessName: "Acme Foods",
		Description:  "cloud kitchen",
		Industry:     "Food",
		Location:     "Pune",
		BrandStyle:   "warm orange",
		Partners:     []string{"Asha", "Ravi"},
	}

	mock.ExpectExec("INSERT INTO business_profiles").
		WithArgs(
			p.SessionID,
			p.UserID,
			p.BusinessName,
			p.Description,
			p.Industry,
			p.Location,
			p.BrandStyle,
			`["Asha","Ravi"]`,
			sqlmock.AnyArg(), // created_at
			sqlmock.AnyArg(), // updated_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), p); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetBySessionNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM business_profiles").
		WithArgs("sess-absent").
		WillReturnRows(sqlmock.NewRows([]string{
			"session_id", "user_id", "business_name", "description", "industry",
			"location", "brand_style", "partners", "created_at", "updated_at",
		}))

	if _, err := repo.GetBySession(context.Background(), "sess-absent"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

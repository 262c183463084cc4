package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/dbtest"
	domain "github.com/BruksfildServices01/rental-booking/internal/domain/rental"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, repo *RentalGormRepository, name, cpf string, email *string) models.User {
	t.Helper()
	u := models.User{Name: name, CPF: cpf, Email: email, Password: "123"}
	if err := repo.CreateUser(context.Background(), &u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func seedProperty(t *testing.T, repo *RentalGormRepository, owner uint) models.Property {
	t.Helper()
	p := models.Property{
		Location: "Centro",
		Price:    decimal.NewFromInt(1000),
		Rooms:    2,
		Size:     decimal.NewFromInt(50),
		Image:    "img.png",
		UserID:   owner,
	}
	if err := repo.CreateProperty(context.Background(), &p); err != nil {
		t.Fatalf("create property: %v", err)
	}
	return p
}

func seedReservation(t *testing.T, repo *RentalGormRepository, user, prop uint) models.Reservation {
	t.Helper()
	start, _ := models.ParseDate("2024-05-01")
	r := models.Reservation{UserID: user, PropertyID: prop, Price: decimal.NewFromInt(300), StartDate: start}
	if err := repo.CreateReservation(context.Background(), &r); err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	return r
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func TestCreateUserDefaults(t *testing.T) {
	repo := NewRentalGormRepository(dbtest.New(t))

	u := seedUser(t, repo, "Ana", "11111111111", nil)

	got, err := repo.GetUser(context.Background(), u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Level != models.DefaultLevel || got.Photo != models.DefaultPhoto {
		t.Fatalf("defaults not persisted: %+v", got)
	}
}

func TestCreateUserDuplicateCPF(t *testing.T) {
	repo := NewRentalGormRepository(dbtest.New(t))
	seedUser(t, repo, "Ana", "11111111111", nil)

	dup := models.User{Name: "Outra", CPF: "11111111111", Password: "x"}
	if err := repo.CreateUser(context.Background(), &dup); err == nil {
		t.Fatalf("expected unique violation")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewRentalGormRepository(gdb)
	seedUser(t, repo, "Ana", "11111111111", strPtr("ana@example.com"))

	dup := models.User{Name: "Outra", CPF: "22222222222", Email: strPtr("ana@example.com"), Password: "x"}
	if err := repo.CreateUser(context.Background(), &dup); err == nil {
		t.Fatalf("expected unique violation on email")
	}
	if n := count(t, gdb, &models.User{}); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}

	// sem email: a unicidade só vale quando informado
	seedUser(t, repo, "Sem Email", "33333333333", nil)
	seedUser(t, repo, "Sem Email 2", "44444444444", nil)
}

func TestGetMissing(t *testing.T) {
	repo := NewRentalGormRepository(dbtest.New(t))
	ctx := context.Background()

	if _, err := repo.GetUser(ctx, 99); !httperr.IsBusiness(err, domain.CodeUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
	if _, err := repo.GetProperty(ctx, 99); !httperr.IsBusiness(err, domain.CodePropertyNotFound) {
		t.Fatalf("expected property not found, got %v", err)
	}
	if _, err := repo.GetReservation(ctx, 99); !httperr.IsBusiness(err, domain.CodeReservationNotFound) {
		t.Fatalf("expected reservation not found, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	repo := NewRentalGormRepository(dbtest.New(t))
	u := seedUser(t, repo, "Ana", "11111111111", nil)

	updated, err := repo.UpdateUser(context.Background(), u.ID, func(u *models.User) {
		u.Level = "admin"
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Level != "admin" || updated.Name != "Ana" {
		t.Fatalf("unexpected user: %+v", updated)
	}

	if _, err := repo.UpdateUser(context.Background(), 99, func(*models.User) {}); !httperr.IsBusiness(err, domain.CodeUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdatePropertyKeepsOtherFields(t *testing.T) {
	repo := NewRentalGormRepository(dbtest.New(t))
	owner := seedUser(t, repo, "Ana", "11111111111", nil)
	p := seedProperty(t, repo, owner.ID)

	updated, err := repo.UpdateProperty(context.Background(), p.ID, func(p *models.Property) {
		p.Rooms = 4
	})
	if err != nil {
		t.Fatal(err)
	}

	if updated.Rooms != 4 || updated.Location != "Centro" || !updated.Price.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected property: %+v", updated)
	}
	if updated.User == nil || updated.User.Name != "Ana" {
		t.Fatalf("owner not preloaded: %+v", updated.User)
	}
}

func TestCreatePropertyUnknownOwner(t *testing.T) {
	repo := NewRentalGormRepository(dbtest.New(t))

	p := models.Property{Location: "X", Price: decimal.NewFromInt(1), Size: decimal.NewFromInt(1), Image: "i", UserID: 404}
	if err := repo.CreateProperty(context.Background(), &p); err == nil {
		t.Fatalf("expected foreign key violation")
	}
}

func TestDeleteUserCascades(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewRentalGormRepository(gdb)

	ana := seedUser(t, repo, "Ana", "11111111111", nil)
	bruno := seedUser(t, repo, "Bruno", "22222222222", nil)

	anaProp := seedProperty(t, repo, ana.ID)
	brunoProp := seedProperty(t, repo, bruno.ID)

	seedReservation(t, repo, bruno.ID, anaProp.ID) // terceiro no imóvel da Ana
	seedReservation(t, repo, ana.ID, brunoProp.ID) // Ana no imóvel do Bruno
	kept := seedReservation(t, repo, bruno.ID, brunoProp.ID)

	if err := repo.DeleteUser(context.Background(), ana.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if n := count(t, gdb, &models.User{}); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
	if n := count(t, gdb, &models.Property{}); n != 1 {
		t.Fatalf("expected 1 property, got %d", n)
	}

	reservations, err := repo.ListReservations(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(reservations) != 1 || reservations[0].ID != kept.ID {
		t.Fatalf("unexpected reservations left: %+v", reservations)
	}
}

func TestDeleteUserMissingChangesNothing(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewRentalGormRepository(gdb)
	seedUser(t, repo, "Ana", "11111111111", nil)

	if err := repo.DeleteUser(context.Background(), 99); !httperr.IsBusiness(err, domain.CodeUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if n := count(t, gdb, &models.User{}); n != 1 {
		t.Fatalf("expected user kept, got %d", n)
	}
}

func TestDeletePropertyCascades(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewRentalGormRepository(gdb)

	ana := seedUser(t, repo, "Ana", "11111111111", nil)
	p := seedProperty(t, repo, ana.ID)
	seedReservation(t, repo, ana.ID, p.ID)

	if err := repo.DeleteProperty(context.Background(), p.ID); err != nil {
		t.Fatal(err)
	}
	if n := count(t, gdb, &models.Reservation{}); n != 0 {
		t.Fatalf("expected reservations removed, got %d", n)
	}
	if n := count(t, gdb, &models.User{}); n != 1 {
		t.Fatalf("owner must stay, got %d", n)
	}

	if err := repo.DeleteProperty(context.Background(), p.ID); !httperr.IsBusiness(err, domain.CodePropertyNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFindUserByEmail(t *testing.T) {
	repo := NewRentalGormRepository(dbtest.New(t))
	ana := seedUser(t, repo, "Ana", "11111111111", strPtr(" Ana@Example.com "))
	seedUser(t, repo, "Sem Email", "22222222222", nil)

	got, err := repo.FindUserByEmail(context.Background(), "ana@EXAMPLE.com  ")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != ana.ID {
		t.Fatalf("expected %d, got %d", ana.ID, got.ID)
	}

	for _, email := range []string{"", "   ", "outra@example.com"} {
		if _, err := repo.FindUserByEmail(context.Background(), email); !httperr.IsBusiness(err, domain.CodeUserNotFound) {
			t.Fatalf("email %q: expected not found, got %v", email, err)
		}
	}
}

func TestListPropertiesResolvesAdvertiser(t *testing.T) {
	repo := NewRentalGormRepository(dbtest.New(t))
	ana := seedUser(t, repo, "Ana", "11111111111", nil)
	seedProperty(t, repo, ana.ID)
	seedProperty(t, repo, ana.ID)

	props, err := repo.ListProperties(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 2 || props[0].ID > props[1].ID {
		t.Fatalf("unexpected list: %+v", props)
	}
	if adv := props[0].ToDTO().Advertiser; adv == nil || *adv != "Ana" {
		t.Fatalf("expected advertiser Ana, got %v", adv)
	}
}

package db_test

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/rental-booking/internal/db"
	"github.com/BruksfildServices01/rental-booking/internal/dbtest"
	"github.com/BruksfildServices01/rental-booking/internal/models"
)

func TestMigrateIsIdempotent(t *testing.T) {
	gdb := dbtest.New(t)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	for _, table := range []string{models.TableUsers, models.TableProperties, models.TableReservations} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
}

func TestLegacyColumnNames(t *testing.T) {
	gdb := dbtest.New(t)

	cases := []struct {
		model   any
		columns []string
	}{
		{&models.User{}, []string{"ID", "NOME", "CPF", "TELEFONE", "EMAIL", "SENHA", "NIVEL", "FOTO"}},
		{&models.Property{}, []string{"ID", "LOCAL", "PRECO", "QUARTOS", "TAMANHO", "IMAGEM", "USUARIO_ID"}},
		{&models.Reservation{}, []string{"ID", "USUARIO_ID", "PROPRIEDADE_ID", "PRECO", "DATA_RESERVA", "FIM_RESERVA"}},
	}

	for _, tc := range cases {
		types, err := gdb.Migrator().ColumnTypes(tc.model)
		if err != nil {
			t.Fatalf("column types: %v", err)
		}

		got := map[string]bool{}
		for _, ct := range types {
			got[ct.Name()] = true
		}
		for _, col := range tc.columns {
			if !got[col] {
				t.Fatalf("%T: missing column %s, got %v", tc.model, col, got)
			}
		}
	}
}

func TestPing(t *testing.T) {
	gdb := dbtest.New(t)

	if err := db.Ping(context.Background(), gdb); err != nil {
		t.Fatalf("ping: %v", err)
	}

	if err := db.Close(gdb); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := db.Ping(context.Background(), gdb); err == nil {
		t.Fatalf("expected ping to fail after close")
	}
}

package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/domain/entities"
)

func TestBikeRepository_LoadAndGet(t *testing.T) {
	repo := NewBikeRepository(2)

	err := repo.LoadBikes([]entities.Bike{
		{Name: "Yamaha R1", BaseHP: 200, BaseWeight: 201, Price: decimal.NewFromInt(17599)},
		{Name: "Ducati V4", BaseHP: 214, BaseWeight: 195, Price: decimal.NewFromInt(23895)},
	})
	if err != nil {
		t.Fatalf("Failed to load bikes: %v", err)
	}

	bike, err := repo.GetBike("Ducati V4")
	if err != nil {
		t.Fatalf("Failed to get bike: %v", err)
	}
	if bike.BaseHP != 214 {
		t.Errorf("Expected base hp 214, got %g", bike.BaseHP)
	}
	if bike.BaseWeight != 195 {
		t.Errorf("Expected base weight 195, got %g", bike.BaseWeight)
	}
	if !bike.Price.Equal(decimal.NewFromInt(23895)) {
		t.Errorf("Expected price 23895, got %s", bike.Price)
	}

	// Returned bikes are copies
	bike.BaseHP = 999
	again, _ := repo.GetBike("Ducati V4")
	if again.BaseHP != 214 {
		t.Errorf("Expected stored bike to be unaffected, got base hp %g", again.BaseHP)
	}

	all, err := repo.GetAllBikes()
	if err != nil {
		t.Fatalf("Failed to get all bikes: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 bikes, got %d", len(all))
	}
	if all[0].Name != "Yamaha R1" || all[1].Name != "Ducati V4" {
		t.Errorf("Expected registration order, got %s, %s", all[0].Name, all[1].Name)
	}
}

func TestBikeRepository_UnknownBike(t *testing.T) {
	repo := NewBikeRepository(0)

	_, err := repo.GetBike("Honda CBR")
	if err == nil {
		t.Fatal("Expected error for unknown bike")
	}
	if !errors.Is(err, entities.ErrUnknownBike) {
		t.Errorf("Expected ErrUnknownBike, got %v", err)
	}

	var unknown *entities.UnknownBikeError
	if !errors.As(err, &unknown) || unknown.Bike != "Honda CBR" {
		t.Errorf("Expected UnknownBikeError for Honda CBR, got %v", err)
	}
}

func TestBikeRepository_DuplicateName(t *testing.T) {
	repo := NewBikeRepository(2)
	bike := entities.Bike{Name: "Yamaha R1", BaseHP: 200, BaseWeight: 201}

	if err := repo.AddBike(bike); err != nil {
		t.Fatalf("Failed to add bike: %v", err)
	}
	err := repo.AddBike(bike)
	if err == nil {
		t.Fatal("Expected duplicate bike error")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("Expected 'already registered' error, got %v", err)
	}
}

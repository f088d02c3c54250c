// Package importer loads restaurant menus from CSV exports. A row that
// names a restaurant starts a new group; rows with a blank restaurant
// column are menu items belonging to the group above them.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quickbite/internal/domain"
)

type RestaurantWriter interface {
	Upsert(ctx context.Context, restaurant domain.Restaurant) (*domain.Restaurant, error)
}

type MenuWriter interface {
	UpsertItem(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}

// CSVImporter reads menu CSV exports and inserts/updates restaurants and
// their menu items.
type CSVImporter struct {
	reader         *csv.Reader
	restaurantRepo RestaurantWriter
	menuRepo       MenuWriter
}

func NewCSVImporter(r io.Reader, restaurants RestaurantWriter, menus MenuWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:         csvr,
		restaurantRepo: restaurants,
		menuRepo:       menus,
	}
}

type csvRow struct {
	RestaurantName     string
	RestaurantCategory string
	RestaurantAddress  string
	DeliveryTime       string
	ItemName           string
	ItemDesc           string
	PriceCents         int64
	ImageRef           string
	Available          bool
}

// Run parses CSV rows and upserts menu items grouped under their
// restaurant. Returns the number of items imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *domain.Restaurant
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.RestaurantName != "" {
			current, err = i.saveRestaurant(ctx, row)
			if err != nil {
				return imported, err
			}
		}
		if row.ItemName == "" {
			continue
		}
		if current == nil {
			return imported, fmt.Errorf("item %q appears before any restaurant row", row.ItemName)
		}
		if err := i.saveItem(ctx, current.ID, row); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) saveRestaurant(ctx context.Context, row *csvRow) (*domain.Restaurant, error) {
	if row.RestaurantAddress == "" {
		return nil, fmt.Errorf("restaurant %q has no address", row.RestaurantName)
	}
	saved, err := i.restaurantRepo.Upsert(ctx, domain.Restaurant{
		Name:         row.RestaurantName,
		Category:     row.RestaurantCategory,
		Address:      row.RestaurantAddress,
		DeliveryTime: row.DeliveryTime,
		IsActive:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert restaurant %q: %w", row.RestaurantName, err)
	}
	return saved, nil
}

func (i *CSVImporter) saveItem(ctx context.Context, restaurantID string, row *csvRow) error {
	if row.PriceCents <= 0 {
		return fmt.Errorf("item %q has no price", row.ItemName)
	}
	_, err := i.menuRepo.UpsertItem(ctx, domain.MenuItem{
		RestaurantID: restaurantID,
		Name:         row.ItemName,
		Description:  row.ItemDesc,
		PriceCents:   row.PriceCents,
		ImageRef:     row.ImageRef,
		IsAvailable:  row.Available,
	})
	if err != nil {
		return fmt.Errorf("upsert item %q: %w", row.ItemName, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	row := &csvRow{
		RestaurantName:     pick(record, index, "restaurant.name"),
		RestaurantCategory: pick(record, index, "restaurant.category"),
		RestaurantAddress:  pick(record, index, "restaurant.address"),
		DeliveryTime:       pick(record, index, "restaurant.deliveryTime"),
		ItemName:           pick(record, index, "item.name"),
		ItemDesc:           pick(record, index, "item.description"),
		ImageRef:           pick(record, index, "item.image"),
	}
	if row.RestaurantName == "" && row.ItemName == "" {
		return nil
	}

	if centStr := pick(record, index, "item.priceCents"); centStr != "" {
		row.PriceCents, _ = strconv.ParseInt(centStr, 10, 64)
	}
	switch strings.ToLower(pick(record, index, "item.available")) {
	case "", "true", "yes", "1":
		row.Available = true
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

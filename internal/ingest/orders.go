package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/piwi3910/cratepack/internal/model"
)

// OrderResult holds orders parsed from input rows plus diagnostics for
// rows that referenced an unknown item.
type OrderResult struct {
	Orders   []*model.Order
	Warnings []string
}

var orderHeaderAliases = map[string][]string{
	"ordernr":  {"ordernr", "order nr", "order id", "order"},
	"date":     {"date", "timestamp"},
	"id":       {"id", "item", "item id"},
	"picked":   {"picked", "qty", "quantity"},
	"location": {"location", "loc"},
}

type orderColumns struct {
	Ordernr, Date, ID, Picked, Location int
}

// ReadOrders reads order rows from a CSV or Excel file, groups rows
// sharing the same Ordernr into one Order, and replicates each row's
// item Picked times. Rows referencing an item ID absent from catalogue
// are dropped with a warning (ErrMissingItemDefinition).
func ReadOrders(path string, catalogue map[string]model.Item) (OrderResult, error) {
	rows, err := readTabularFile(path)
	if err != nil {
		return OrderResult{}, err
	}
	return parseOrderRows(rows, catalogue), nil
}

func detectOrderColumns(header []string) (orderColumns, bool) {
	cols := orderColumns{-1, -1, -1, -1, -1}
	found := false
	for i, cellVal := range header {
		normalized := strings.ToLower(strings.TrimSpace(cellVal))
		for role, aliases := range orderHeaderAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				found = true
				switch role {
				case "ordernr":
					cols.Ordernr = setIfUnset(cols.Ordernr, i)
				case "date":
					cols.Date = setIfUnset(cols.Date, i)
				case "id":
					cols.ID = setIfUnset(cols.ID, i)
				case "picked":
					cols.Picked = setIfUnset(cols.Picked, i)
				case "location":
					cols.Location = setIfUnset(cols.Location, i)
				}
			}
		}
	}
	return cols, found
}

func parseOrderRows(rows [][]string, catalogue map[string]model.Item) OrderResult {
	result := OrderResult{}
	if len(rows) == 0 {
		return result
	}

	cols, hasHeader := detectOrderColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	} else {
		cols = orderColumns{Ordernr: 0, Date: 1, ID: 2, Picked: 3, Location: 4}
	}

	byOrder := map[string]*model.Order{}
	var order []string

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		lineLabel := fmt.Sprintf("row %d", i+1)

		ordernr := cell(row, cols.Ordernr)
		if ordernr == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: missing Ordernr, skipped", lineLabel))
			continue
		}

		itemID := cell(row, cols.ID)
		base, ok := catalogue[itemID]
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: unknown item ID %q, row dropped", lineLabel, itemID))
			continue
		}

		picked, err := strconv.Atoi(cell(row, cols.Picked))
		if err != nil || picked <= 0 {
			picked = 1
		}

		location := cell(row, cols.Location)
		ts := parseOrderDate(cell(row, cols.Date))

		o, exists := byOrder[ordernr]
		if !exists {
			o = model.NewOrder(ordernr, ts)
			byOrder[ordernr] = o
			order = append(order, ordernr)
		}

		for n := 0; n < picked; n++ {
			it := base
			it.Location = location
			if picked > 1 {
				// Order transitions key items by ID; replicated picks need
				// distinct IDs so rejecting one copy doesn't remove them all.
				it.ID = fmt.Sprintf("%s-%d", itemID, n+1)
			}
			o.AddItem(it)
		}
	}

	for _, id := range order {
		o := byOrder[id]
		o.SortPending()
		result.Orders = append(result.Orders, o)
	}
	return result
}

func parseOrderDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

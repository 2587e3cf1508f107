package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
)

// SheetName is the worksheet the XLSX export writes to.
const SheetName = "Leaderboard"

// XLSX writes the leaderboard as a workbook with one row per player and the banner
// values underneath.
func XLSX(w io.Writer, snap *leaderboard.Snapshot, roster leaderboard.Roster) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := []interface{}{"Rank", "Player", "Group"}
	for _, h := range snap.WeekHeaders {
		header = append(header, h)
	}
	header = append(header, "Total")

	row := 1
	if err := setRow(f, row, header); err != nil {
		return err
	}

	for _, p := range snap.Players {
		row++
		values := []interface{}{p.Rank, p.Name, roster.DisplayName(p.Group)}
		for _, c := range WeekCells(snap, p) {
			values = append(values, c.Text)
		}
		values = append(values, p.Total)
		if err := setRow(f, row, values); err != nil {
			return err
		}
	}

	row += 2
	if err := setRow(f, row, []interface{}{"Total Birdies:", BirdiesBanner(snap.TotalBirdies)}); err != nil {
		return err
	}
	if err := setRow(f, row+1, []interface{}{"Birdie King:", KingBanner(snap.BirdieKing)}); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

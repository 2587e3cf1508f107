// Package render turns a leaderboard snapshot into something people look at: a text
// table, JSON, a standalone HTML page, an XLSX workbook or a PNG chart of totals.
//
// All formats share the same display conventions. A weekly score of "0" or "" means the
// player has no score that week and is shown as a dash; a positive numeric score is
// emphasized. Only as many week columns as the sheet has headers are shown.
package render

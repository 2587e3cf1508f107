// Package leaderboard recovers ranked player standings from league sheet records.
//
// The league sheet is laid out for people, not programs: group blocks separated by
// header rows, blank spacer cells and inline labels such as "Total Birdies:". The
// extractor walks the records once, keeps every row that looks like a player line
// (sheet rank 1-4, a name, a numeric total), assigns groups by arrival order and then
// ranks everyone by total. Rows that do not fit are skipped, never reported as errors.
package leaderboard

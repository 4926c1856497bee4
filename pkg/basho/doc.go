// Package basho formulates round-robin-style sumo tournament scheduling as
// an integer program for the CP-SAT solver and extracts concrete schedules,
// bout outcomes and running scores from the solved variables.
//
// The base model assigns one binary "fight" variable per wrestler pair and
// day. Score tracking extends it with per-bout winner variables and
// cumulative per-day score variables. Query strategies layer extra
// constraints and objectives on top: fixing a champion, securing the title
// by a given day, or pushing wrestlers into (or out of) a score band.
package basho

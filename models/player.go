// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Player is a single account record from the "players" table as seen by the
// authentication flow. It carries the stored password hash and therefore must
// never be serialized into a response.
type Player struct {
	// ID is the system-assigned primary key. Immutable.
	ID int64 `json:"id"`

	// Name is the unique, case-sensitive login identifier (column player_name).
	Name string `json:"-"`

	// PasswordHash is the bcrypt output stored at registration.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Player model.
func (p Player) TableName() string {
	return "players"
}

// PlayerStats holds the gameplay counters of a player. All counters are
// created as zero at registration and are only mutated by gameplay logic
// outside of this service.
//
// JSON keys match the column names of the "players" table.
type PlayerStats struct {
	TotalGames           int64 `json:"total_games"`
	FavorableMissions    int64 `json:"favorable_missions"`
	UnfavorableMissions  int64 `json:"unfavorable_missions"`
	FavorableVotes       int64 `json:"favorable_votes"`
	UnfavorableVotes     int64 `json:"unfavorable_votes"`
	FavorablePlotCards   int64 `json:"favorable_plot_cards"`
	UnfavorablePlotCards int64 `json:"unfavorable_plot_cards"`
	FavorableTeams       int64 `json:"favorable_teams"`
	UnfavorableTeams     int64 `json:"unfavorable_teams"`
	PlayersFooled        int64 `json:"players_fooled"`
	PlayersNotFooled     int64 `json:"players_not_fooled"`
	FoundAsCommander     int64 `json:"found_as_commander"`
	PickedCommander      int64 `json:"picked_commander"`
	GamesWon             int64 `json:"games_won"`
	FailedVotes          int64 `json:"failed_votes"`
	TotalScore           int64 `json:"total_score"`
	TimesAsResistance    int64 `json:"times_as_resistance"`
	TimesAsSpy           int64 `json:"times_as_spy"`
	GamesLost            int64 `json:"games_lost"`
}

// Profile is the public statistical view of a player: the record id plus all
// counters. The login name and the password hash are not part of it.
type Profile struct {
	ID int64 `json:"id"`

	PlayerStats
}

// AccountInfo is returned after a successful login.
type AccountInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

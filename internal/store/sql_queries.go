package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resistance-accounts/models"
)

const (
	playersTable = "players"

	columnID           = "id"
	columnPlayerName   = "player_name"
	columnPasswordHash = "password_hash"
)

// statsColumns lists the statistics counters in the order they are scanned
// into [models.PlayerStats] by [statsScanTargets].
var statsColumns = []string{
	"total_games",
	"favorable_missions",
	"unfavorable_missions",
	"favorable_votes",
	"unfavorable_votes",
	"favorable_plot_cards",
	"unfavorable_plot_cards",
	"favorable_teams",
	"unfavorable_teams",
	"players_fooled",
	"players_not_fooled",
	"found_as_commander",
	"picked_commander",
	"games_won",
	"failed_votes",
	"total_score",
	"times_as_resistance",
	"times_as_spy",
	"games_lost",
}

// profileColumns is the only projection a profile read may select.
// It never includes player_name or password_hash.
var profileColumns = append([]string{columnID}, statsColumns...)

func statsScanTargets(s *models.PlayerStats) []any {
	return []any{
		&s.TotalGames,
		&s.FavorableMissions,
		&s.UnfavorableMissions,
		&s.FavorableVotes,
		&s.UnfavorableVotes,
		&s.FavorablePlotCards,
		&s.UnfavorablePlotCards,
		&s.FavorableTeams,
		&s.UnfavorableTeams,
		&s.PlayersFooled,
		&s.PlayersNotFooled,
		&s.FoundAsCommander,
		&s.PickedCommander,
		&s.GamesWon,
		&s.FailedVotes,
		&s.TotalScore,
		&s.TimesAsResistance,
		&s.TimesAsSpy,
		&s.GamesLost,
	}
}

func buildExistsQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("1").
		From(playersTable).
		Where(sq.Eq{columnPlayerName: name}).
		Limit(1).
		ToSql()
}

// buildInsertPlayerQuery relies on the column defaults for every counter.
func buildInsertPlayerQuery(b sq.StatementBuilderType, name, passwordHash string) (string, []any, error) {
	return b.Insert(playersTable).
		Columns(columnPlayerName, columnPasswordHash).
		Values(name, passwordHash).
		Suffix("RETURNING " + columnID).
		ToSql()
}

func buildFindByNameQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(columnID, columnPlayerName, columnPasswordHash).
		From(playersTable).
		Where(sq.Eq{columnPlayerName: name}).
		ToSql()
}

func buildFindProfileQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(profileColumns...).
		From(playersTable).
		Where(sq.Eq{columnPlayerName: name}).
		ToSql()
}

package querybuilder

import "testing"

func TestSelectWithJoinAndConditions(t *testing.T) {
	sql, args, err := Select("m.match_id", "ht.common_name AS home_team_name").
		From("matches m").
		Join("teams ht ON ht.team_id = m.home_team_id").
		Where(
			Gte("m.kickoff_at", "2024-05-01"),
			Lt("m.kickoff_at", "2024-05-02"),
		).
		OrderBy("m.kickoff_at ASC", "m.match_id ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT m.match_id, ht.common_name AS home_team_name" +
		" FROM matches m JOIN teams ht ON ht.team_id = m.home_team_id" +
		" WHERE m.kickoff_at >= $1 AND m.kickoff_at < $2" +
		" ORDER BY m.kickoff_at ASC, m.match_id ASC"
	if sql != want {
		t.Fatalf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectWithOrNotNullAndLimit(t *testing.T) {
	sql, args, err := Select("*").
		From("matches m").
		Where(
			Or(Eq("m.home_team_id", int64(7)), Eq("m.away_team_id", int64(7))),
			Neq("m.match_id", int64(10)),
			IsNotNull("m.home_goals"),
			IsNotNull("m.away_goals"),
		).
		OrderBy("m.kickoff_at DESC", "m.match_id DESC").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT * FROM matches m" +
		" WHERE (m.home_team_id = $1 OR m.away_team_id = $2)" +
		" AND m.match_id != $3" +
		" AND m.home_goals IS NOT NULL AND m.away_goals IS NOT NULL" +
		" ORDER BY m.kickoff_at DESC, m.match_id DESC LIMIT 5"
	if sql != want {
		t.Fatalf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectNestedPairPredicate(t *testing.T) {
	sql, args, err := Select("m.match_id").
		From("matches m").
		Where(
			Or(
				And(Eq("m.home_team_id", int64(1)), Eq("m.away_team_id", int64(2))),
				And(Eq("m.home_team_id", int64(2)), Eq("m.away_team_id", int64(1))),
			),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT m.match_id FROM matches m" +
		" WHERE ((m.home_team_id = $1 AND m.away_team_id = $2)" +
		" OR (m.home_team_id = $3 AND m.away_team_id = $4))"
	if sql != want {
		t.Fatalf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectRequiresTableAndColumns(t *testing.T) {
	if _, _, err := Select().From("matches").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

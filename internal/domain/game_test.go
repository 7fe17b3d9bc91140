package domain

import (
	"errors"
	"testing"
)

// testDeal is a fixed legal distribution used throughout the game tests.
//
//	seat 0: 3333 4444 5555 6666 7
//	seat 1: 7 8888 9999 TTTT JJJJ
//	seat 2: QQQQ KKKK AAAA 2222 X
//	bonus:  7 7 D
func testDeal() ([NumSeats][]Rank, []Rank) {
	var hands [NumSeats][]Rank
	hands[0] = concat(repeat(Rank3, 4), repeat(Rank4, 4), repeat(Rank5, 4), repeat(Rank6, 4), repeat(Rank7, 1))
	hands[1] = concat(repeat(Rank7, 1), repeat(Rank8, 4), repeat(Rank9, 4), repeat(RankT, 4), repeat(RankJ, 4))
	hands[2] = concat(repeat(RankQ, 4), repeat(RankK, 4), repeat(RankA, 4), repeat(Rank2, 4), repeat(RankSmallJoker, 1))
	bonus := []Rank{Rank7, Rank7, RankBigJoker}
	return hands, bonus
}

func repeat(r Rank, n int) []Rank {
	out := make([]Rank, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func concat(parts ...[]Rank) []Rank {
	var out []Rank
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func mustNewGame(t *testing.T, landlord Seat, params Params) *Game {
	t.Helper()
	hands, bonus := testDeal()
	g, err := NewGame(hands, bonus, landlord, params)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func mustPlay(t *testing.T, g *Game, seat Seat, cards []Rank) {
	t.Helper()
	if err := g.Play(seat, cards); err != nil {
		t.Fatalf("Play(seat %d, %v): %v", seat, cards, err)
	}
}

func mustPass(t *testing.T, g *Game, seat Seat) {
	t.Helper()
	if err := g.Pass(seat); err != nil {
		t.Fatalf("Pass(seat %d): %v", seat, err)
	}
}

func TestNewGame(t *testing.T) {
	g := mustNewGame(t, 0, Params{})

	if g.Phase != PhasePlaying {
		t.Errorf("Phase = %v, want playing", g.Phase)
	}
	if g.HandCount(0) != 20 {
		t.Errorf("landlord hand = %d cards, want 20", g.HandCount(0))
	}
	if g.HandCount(1) != 17 || g.HandCount(2) != 17 {
		t.Errorf("farmer hands = %d/%d cards, want 17/17", g.HandCount(1), g.HandCount(2))
	}
	if g.CurrentTurn != 0 || g.Leader != 0 {
		t.Errorf("turn/leader = %d/%d, want landlord 0", g.CurrentTurn, g.Leader)
	}
}

func TestNewGameDoesNotAliasCallerHands(t *testing.T) {
	hands, bonus := testDeal()
	g, err := NewGame(hands, bonus, 0, Params{})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	hands[1][0] = RankBigJoker
	if g.Hands[1][0] == RankBigJoker {
		t.Error("game hand aliases the caller's slice")
	}
}

func TestNewGameErrors(t *testing.T) {
	good, goodBonus := testDeal()

	short := good
	short[1] = short[1][:16]

	overflow := good
	overflow[0] = append([]Rank(nil), good[0]...)
	overflow[0][16] = Rank3 // fifth 3 across the deal

	unknown := good
	unknown[2] = append([]Rank(nil), good[2]...)
	unknown[2][0] = Rank(99)

	tests := []struct {
		name     string
		hands    [NumSeats][]Rank
		bonus    []Rank
		landlord Seat
		want     error
	}{
		{"negative seat", good, goodBonus, -1, ErrInvalidSeat},
		{"seat too high", good, goodBonus, 3, ErrInvalidSeat},
		{"short hand", short, goodBonus, 0, ErrInvalidHandSize},
		{"short bonus", good, goodBonus[:2], 0, ErrInvalidHandSize},
		{"rank overflow", overflow, goodBonus, 0, ErrCardOverflow},
		{"unknown rank", unknown, goodBonus, 0, ErrUnknownRank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGame(tt.hands, tt.bonus, tt.landlord, Params{}); !errors.Is(err, tt.want) {
				t.Errorf("NewGame error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlayValidation(t *testing.T) {
	t.Run("not your turn", func(t *testing.T) {
		g := mustNewGame(t, 0, Params{})
		if err := g.Play(1, []Rank{Rank7}); !errors.Is(err, ErrNotYourTurn) {
			t.Errorf("error = %v, want ErrNotYourTurn", err)
		}
	})

	t.Run("illegal combination", func(t *testing.T) {
		g := mustNewGame(t, 0, Params{})
		if err := g.Play(0, []Rank{Rank3, Rank4}); !errors.Is(err, ErrIllegalCombination) {
			t.Errorf("error = %v, want ErrIllegalCombination", err)
		}
	})

	t.Run("does not beat", func(t *testing.T) {
		g := mustNewGame(t, 0, Params{})
		mustPlay(t, g, 0, []Rank{Rank7})
		if err := g.Play(1, []Rank{Rank8, Rank8}); !errors.Is(err, ErrDoesNotBeatLastPlayed) {
			t.Errorf("pair over single: error = %v, want ErrDoesNotBeatLastPlayed", err)
		}
		mustPlay(t, g, 1, []Rank{Rank8})
		if err := g.Play(2, []Rank{Rank2}); err != nil {
			t.Errorf("higher single rejected: %v", err)
		}
	})

	t.Run("card not in hand", func(t *testing.T) {
		g := mustNewGame(t, 0, Params{})
		if err := g.Play(0, []Rank{RankSmallJoker}); !errors.Is(err, ErrCardNotInHand) {
			t.Errorf("error = %v, want ErrCardNotInHand", err)
		}
	})

	t.Run("insufficient multiplicity", func(t *testing.T) {
		g := mustNewGame(t, 0, Params{})
		// Landlord holds exactly three 7s after the bonus merge.
		if err := g.Play(0, []Rank{Rank7, Rank7, Rank7, Rank7}); !errors.Is(err, ErrCardNotInHand) {
			t.Errorf("error = %v, want ErrCardNotInHand", err)
		}
	})

	t.Run("rejected play leaves state untouched", func(t *testing.T) {
		g := mustNewGame(t, 0, Params{})
		before := g.HandCount(0)
		_ = g.Play(0, []Rank{Rank3, Rank4})
		if g.HandCount(0) != before || len(g.History) != 0 || g.CurrentTurn != 0 {
			t.Error("failed play mutated game state")
		}
	})
}

func TestPassValidation(t *testing.T) {
	t.Run("opening move", func(t *testing.T) {
		g := mustNewGame(t, 0, Params{})
		if err := g.Pass(0); !errors.Is(err, ErrMustPlayFirstMove) {
			t.Errorf("error = %v, want ErrMustPlayFirstMove", err)
		}
	})

	t.Run("not your turn", func(t *testing.T) {
		g := mustNewGame(t, 0, Params{})
		if err := g.Pass(2); !errors.Is(err, ErrNotYourTurn) {
			t.Errorf("error = %v, want ErrNotYourTurn", err)
		}
	})

	t.Run("forced play after double pass", func(t *testing.T) {
		g := mustNewGame(t, 0, Params{})
		mustPlay(t, g, 0, []Rank{Rank7})
		mustPass(t, g, 1)
		mustPass(t, g, 2)

		if !g.MustPlay {
			t.Fatal("expected must-play after two consecutive passes")
		}
		if err := g.Pass(0); !errors.Is(err, ErrForcedPlay) {
			t.Errorf("error = %v, want ErrForcedPlay", err)
		}
	})
}

func TestDoublePassResetsTrick(t *testing.T) {
	g := mustNewGame(t, 0, Params{})
	mustPlay(t, g, 0, []Rank{Rank7})
	mustPass(t, g, 1)
	mustPass(t, g, 2)

	if g.CurrentTurn != 0 || g.Leader != 0 {
		t.Errorf("turn/leader = %d/%d, want 0/0", g.CurrentTurn, g.Leader)
	}
	if g.LastPlayed.Type != Invalid {
		t.Errorf("LastPlayed.Type = %v, want cleared", g.LastPlayed.Type)
	}
	if g.ConsecutivePasses != 0 {
		t.Errorf("ConsecutivePasses = %d, want 0", g.ConsecutivePasses)
	}

	// The new trick is open: a combination unrelated to the previous single
	// may lead.
	mustPlay(t, g, 0, []Rank{Rank3, Rank3})
	if g.MustPlay {
		t.Error("must-play flag should clear after the forced play")
	}
}

func TestLeadPassesToBeater(t *testing.T) {
	g := mustNewGame(t, 0, Params{})
	mustPlay(t, g, 0, []Rank{Rank7})
	mustPlay(t, g, 1, []Rank{Rank8})
	mustPass(t, g, 2)
	mustPass(t, g, 0)

	if g.Leader != 1 || g.CurrentTurn != 1 {
		t.Errorf("leader/turn = %d/%d, want seat 1 leading", g.Leader, g.CurrentTurn)
	}
	if g.LastPlayed.Type != Invalid {
		t.Error("trick should be open for the new leader")
	}
	if !g.MustPlay {
		t.Error("new leader must play")
	}
}

// closeTrick has the two non-leading seats pass so the leader opens fresh.
func closeTrick(t *testing.T, g *Game) {
	t.Helper()
	mustPass(t, g, g.CurrentTurn)
	mustPass(t, g, g.CurrentTurn)
}

func TestLandlordWin(t *testing.T) {
	g := mustNewGame(t, 0, Params{})

	for _, r := range []Rank{Rank3, Rank4, Rank5, Rank6} {
		mustPlay(t, g, 0, []Rank{r, r, r, r})
		closeTrick(t, g)
	}
	if g.BombCount != 4 {
		t.Errorf("BombCount = %d, want 4", g.BombCount)
	}

	for i := 0; i < 3; i++ {
		mustPlay(t, g, 0, []Rank{Rank7})
		closeTrick(t, g)
	}

	mustPlay(t, g, 0, []Rank{RankBigJoker})

	if g.Result == nil {
		t.Fatal("expected a result after the landlord's last card")
	}
	if g.Result.Winner != WinnerLandlord || g.Result.Seat != 0 {
		t.Errorf("result = %+v, want landlord win at seat 0", g.Result)
	}
	if g.Phase != PhaseEnded {
		t.Errorf("Phase = %v, want ended", g.Phase)
	}
	if g.HandCount(0) != 0 || g.Played[0] != 20 {
		t.Errorf("landlord hand/played = %d/%d, want 0/20", g.HandCount(0), g.Played[0])
	}

	if err := g.Play(1, []Rank{Rank7}); !errors.Is(err, ErrGameOver) {
		t.Errorf("play after end: error = %v, want ErrGameOver", err)
	}
	if err := g.Pass(1); !errors.Is(err, ErrGameOver) {
		t.Errorf("pass after end: error = %v, want ErrGameOver", err)
	}
}

func TestFarmerWinPerSeat(t *testing.T) {
	g := mustNewGame(t, 0, Params{})

	mustPlay(t, g, 0, []Rank{Rank3})
	mustPlay(t, g, 1, []Rank{Rank7})
	mustPass(t, g, 2)
	mustPass(t, g, 0)

	for _, r := range []Rank{Rank8, Rank9, RankT, RankJ} {
		mustPlay(t, g, 1, []Rank{r, r, r, r})
		if r == RankJ {
			break
		}
		closeTrick(t, g)
	}

	if g.Result == nil {
		t.Fatal("expected a result once seat 1 emptied its hand")
	}
	if g.Result.Winner != WinnerFarmers || g.Result.Seat != 1 {
		t.Errorf("result = %+v, want farmers win at seat 1", g.Result)
	}
	if g.Played[1] != 17 || g.HandCount(1) != 0 {
		t.Errorf("seat 1 played/hand = %d/%d, want 17/0", g.Played[1], g.HandCount(1))
	}
	// The other farmer and the landlord still hold cards: the win is per-seat.
	if g.HandCount(0) == 0 || g.HandCount(2) == 0 {
		t.Error("only the emptied seat should be out of cards")
	}
}

func TestFarmerTeamThresholdLegacyRule(t *testing.T) {
	g := mustNewGame(t, 0, Params{FarmerTeamThreshold: 5})

	mustPlay(t, g, 0, []Rank{Rank3})
	mustPlay(t, g, 1, []Rank{Rank7})
	mustPlay(t, g, 2, []Rank{RankQ})
	mustPass(t, g, 0)
	mustPass(t, g, 1)

	// Farmers have played 2 cards; a bomb pushes the team total to 6.
	mustPlay(t, g, 2, []Rank{RankK, RankK, RankK, RankK})

	if g.Result == nil {
		t.Fatal("expected a result at the team threshold")
	}
	if g.Result.Winner != WinnerFarmers || g.Result.Seat != 2 {
		t.Errorf("result = %+v, want farmers win credited to seat 2", g.Result)
	}
}

func TestCardConservation(t *testing.T) {
	g := mustNewGame(t, 0, Params{})

	// The straight is deliberately unordered; classification sorts a copy.
	mustPlay(t, g, 0, []Rank{Rank4, Rank5, Rank6, Rank7, Rank3})
	mustPlay(t, g, 1, []Rank{Rank7, Rank8, Rank9, RankT, RankJ})
	mustPass(t, g, 2)
	mustPass(t, g, 0)
	mustPlay(t, g, 1, []Rank{Rank8, Rank8})

	for s := Seat(0); s < NumSeats; s++ {
		want := 17
		if s == g.Landlord {
			want = 20
		}
		if got := g.HandCount(s) + g.Played[s]; got != want {
			t.Errorf("seat %d: hand+played = %d, want %d", s, got, want)
		}
		if len(g.PlayedCards[s]) != g.Played[s] {
			t.Errorf("seat %d: ledger has %d cards, played count %d", s, len(g.PlayedCards[s]), g.Played[s])
		}
	}
}

func TestHistoryRecordsPlaysAndPasses(t *testing.T) {
	g := mustNewGame(t, 0, Params{})

	mustPlay(t, g, 0, []Rank{Rank7})
	mustPlay(t, g, 1, []Rank{RankJ})
	mustPass(t, g, 2)
	mustPass(t, g, 0)

	if len(g.History) != 4 {
		t.Fatalf("history length = %d, want 4", len(g.History))
	}
	for i, rec := range g.History {
		if rec.Index != i {
			t.Errorf("record %d: Index = %d", i, rec.Index)
		}
	}
	if g.History[2].Seat != 2 || !g.History[2].Passed() {
		t.Errorf("record 2 = %+v, want pass by seat 2", g.History[2])
	}
	if g.History[1].Passed() {
		t.Error("record 1 should be a play, not a pass")
	}
}

func TestNonZeroLandlordSeat(t *testing.T) {
	g := mustNewGame(t, 2, Params{})

	if g.HandCount(2) != 20 {
		t.Fatalf("landlord at seat 2 holds %d cards, want 20", g.HandCount(2))
	}
	if g.CurrentTurn != 2 {
		t.Fatalf("first turn = %d, want landlord seat 2", g.CurrentTurn)
	}

	// Seat 2 holds QQQQ KKKK AAAA 2222 X plus the bonus 7 7 D.
	mustPlay(t, g, 2, []Rank{Rank7})
	if g.CurrentTurn != 0 {
		t.Errorf("turn after landlord = %d, want 0", g.CurrentTurn)
	}
	if RoleOf(g.Landlord, 0) != RoleLandlordDown {
		t.Errorf("seat 0 role = %v, want landlord_down", RoleOf(g.Landlord, 0))
	}
}

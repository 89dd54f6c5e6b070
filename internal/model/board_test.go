package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/model"
)

type BoardSuite struct {
	suite.Suite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) ship(kind model.ShipKind, pos model.Position) *model.Ship {
	ship, err := model.NewShip(kind, pos)
	s.Require().NoError(err)
	return ship
}

// Ship tests

func (s *BoardSuite) TestNewShipRejectsLengthMismatch() {
	_, err := model.NewShip(model.Cruiser, model.NewHorizontal(0, 1, 0))
	s.ErrorIs(err, model.ErrShipLengthMismatch)
}

func (s *BoardSuite) TestNewShipRejectsUnknownKind() {
	_, err := model.NewShip("dinghy", model.NewHorizontal(0, 0, 0))
	s.ErrorIs(err, model.ErrUnknownShipKind)
}

func (s *BoardSuite) TestNewShipHealthMatchesLength() {
	for _, kind := range model.AllShipKinds() {
		ship := s.ship(kind, model.NewVertical(0, kind.Length()-1, 0))
		s.Len(ship.Health, kind.Length())
		s.Len(ship.Position.Coordinates(), kind.Length())
		s.False(ship.Sunk())
	}
}

func (s *BoardSuite) TestSubmarineSunkByOneHit() {
	sub := s.ship(model.Submarine, model.NewHorizontal(3, 3, 3))

	s.True(sub.Hit(model.Point{X: 3, Y: 3}))
	s.True(sub.Sunk())
}

func (s *BoardSuite) TestDestroyerNeedsBothCells() {
	destroyer := s.ship(model.Destroyer, model.NewHorizontal(2, 3, 5))

	s.True(destroyer.Hit(model.Point{X: 2, Y: 5}))
	s.False(destroyer.Sunk())

	s.True(destroyer.Hit(model.Point{X: 3, Y: 5}))
	s.True(destroyer.Sunk())
}

func (s *BoardSuite) TestHittingEveryCellSinksEveryKind() {
	for _, kind := range model.AllShipKinds() {
		ship := s.ship(kind, model.NewHorizontal(0, kind.Length()-1, 9))
		for _, p := range ship.Position.Coordinates() {
			s.True(ship.Hit(p))
		}
		s.True(ship.Sunk(), kind)
	}
}

func (s *BoardSuite) TestMissLeavesShipUnchanged() {
	carrier := s.ship(model.Carrier, model.NewVertical(0, 4, 0))
	before := append([]bool(nil), carrier.Health...)

	s.False(carrier.Hit(model.Point{X: 1, Y: 0}))
	s.False(carrier.Hit(model.Point{X: 0, Y: 5}))

	s.Equal(before, carrier.Health)
	s.False(carrier.Sunk())
}

func (s *BoardSuite) TestRepeatHitStillReportsHit() {
	destroyer := s.ship(model.Destroyer, model.NewVertical(0, 1, 0))

	s.True(destroyer.Hit(model.Point{X: 0, Y: 0}))
	s.True(destroyer.Hit(model.Point{X: 0, Y: 0}))
	s.Equal([]bool{false, true}, destroyer.Health)
}

func (s *BoardSuite) TestHitIsIndexAligned() {
	cruiser := s.ship(model.Cruiser, model.NewHorizontal(4, 6, 1))

	cruiser.Hit(model.Point{X: 5, Y: 1})
	s.Equal([]bool{true, false, true}, cruiser.Health)

	alive, ok := cruiser.CellAlive(model.Point{X: 5, Y: 1})
	s.True(ok)
	s.False(alive)
	_, ok = cruiser.CellAlive(model.Point{X: 7, Y: 1})
	s.False(ok)
}

// Board tests

func (s *BoardSuite) TestRegisterStrikeHit() {
	board := model.NewBoard([]*model.Ship{
		s.ship(model.Destroyer, model.NewHorizontal(2, 3, 5)),
	})

	s.True(board.RegisterStrike(model.Point{X: 3, Y: 5}))
	s.Equal([]bool{true, false}, board.Ships()[0].Health)
}

func (s *BoardSuite) TestRegisterStrikeMissMutatesNothing() {
	board := model.NewBoard([]*model.Ship{
		s.ship(model.Destroyer, model.NewHorizontal(2, 3, 5)),
		s.ship(model.Submarine, model.NewHorizontal(0, 0, 0)),
	})

	s.False(board.RegisterStrike(model.Point{X: 4, Y: 4}))
	for _, ship := range board.Ships() {
		for _, alive := range ship.Health {
			s.True(alive)
		}
	}
}

func (s *BoardSuite) TestRegisterStrikeDoesNotRecordImpact() {
	board := model.NewBoard([]*model.Ship{
		s.ship(model.Submarine, model.NewHorizontal(0, 0, 0)),
	})

	board.RegisterStrike(model.Point{X: 0, Y: 0})
	s.False(board.AlreadyStruck(model.Point{X: 0, Y: 0}))
	s.Empty(board.Impacts())
}

func (s *BoardSuite) TestAlreadyStruckAfterRecord() {
	board := model.NewBoard(nil)
	p := model.Point{X: 4, Y: 4}

	s.False(board.AlreadyStruck(p))
	board.RecordImpact(model.Impact{Point: p, Hit: false})
	s.True(board.AlreadyStruck(p))

	board.RecordImpact(model.Impact{Point: model.Point{X: 1, Y: 1}, Hit: true})
	s.True(board.AlreadyStruck(p))
}

func (s *BoardSuite) TestImpactsInStrikeOrder() {
	board := model.NewBoard(nil)
	board.RecordImpact(model.Impact{Point: model.Point{X: 9, Y: 9}, Hit: true})
	board.RecordImpact(model.Impact{Point: model.Point{X: 0, Y: 0}, Hit: false})

	s.Equal([]model.Impact{
		{Point: model.Point{X: 9, Y: 9}, Hit: true},
		{Point: model.Point{X: 0, Y: 0}, Hit: false},
	}, board.Impacts())

	impact, ok := board.ImpactAt(model.Point{X: 9, Y: 9})
	s.True(ok)
	s.True(impact.Hit)
}

func (s *BoardSuite) TestAllShipsSunk() {
	board := model.NewBoard([]*model.Ship{
		s.ship(model.Submarine, model.NewHorizontal(0, 0, 0)),
		s.ship(model.Destroyer, model.NewVertical(2, 3, 5)),
	})
	s.False(board.AllShipsSunk())

	board.RegisterStrike(model.Point{X: 0, Y: 0})
	board.RegisterStrike(model.Point{X: 5, Y: 2})
	s.False(board.AllShipsSunk())
	s.Equal(1, board.SunkCount())

	board.RegisterStrike(model.Point{X: 5, Y: 3})
	s.True(board.AllShipsSunk())
	s.Equal(2, board.SunkCount())
}

func (s *BoardSuite) TestAllShipsSunkVacuousForEmptyFleet() {
	s.True(model.NewBoard(nil).AllShipsSunk())
}

func (s *BoardSuite) TestShipAt() {
	cruiser := s.ship(model.Cruiser, model.NewVertical(1, 3, 8))
	board := model.NewBoard([]*model.Ship{cruiser})

	s.Same(cruiser, board.ShipAt(model.Point{X: 8, Y: 2}))
	s.Nil(board.ShipAt(model.Point{X: 7, Y: 2}))
}

func (s *BoardSuite) TestHitStats() {
	board := model.NewBoard(nil)
	s.Equal(model.HitStats{}, board.HitStats())
	s.Equal(0.0, board.HitStats().HitRate())

	board.RecordImpact(model.Impact{Point: model.Point{X: 0, Y: 0}, Hit: true})
	board.RecordImpact(model.Impact{Point: model.Point{X: 0, Y: 1}, Hit: false})
	board.RecordImpact(model.Impact{Point: model.Point{X: 0, Y: 2}, Hit: false})
	board.RecordImpact(model.Impact{Point: model.Point{X: 0, Y: 3}, Hit: true})

	stats := board.HitStats()
	s.Equal(model.HitStats{Hits: 2, Total: 4}, stats)
	s.Equal(2, stats.Misses())
	s.InDelta(50.0, stats.HitRate(), 0.001)
	s.Equal(96, board.UnstruckCount())
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ringGold   = Product{ID: "p-ring", Name: "Gold Ring", Price: 2000}
	chainLong  = Product{ID: "p-chain", Name: "Silver Chain", Price: 1500}
	studSimple = Product{ID: "p-stud", Name: "Stud Earrings", Price: 750}
)

func TestCartTotalIsSumOfLineSubtotals(t *testing.T) {
	var c Cart
	c.AddLine(ringGold, 2)
	c.AddLine(chainLong, 1)

	assert.Equal(t, int64(2*2000+1500), c.Total())
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	var c Cart
	c.AddLine(ringGold, 1)
	c.AddLine(ringGold, 2)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, int64(6000), c.Total())
}

func TestCartAddSnapshotsUnitPrice(t *testing.T) {
	var c Cart
	c.AddLine(ringGold, 1)

	// A later catalog price change must not affect the snapshotted line.
	repriced := ringGold
	repriced.Price = 9999
	c.AddLine(repriced, 1)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(2000), c.Lines[0].Price)
}

func TestCartAddThenRemoveRestoresPriorTotal(t *testing.T) {
	var c Cart
	c.AddLine(ringGold, 2)
	before := c.Total()

	c.AddLine(studSimple, 3)
	c.RemoveLine(studSimple.ID)

	assert.Equal(t, before, c.Total())
}

func TestCartSetQuantityIsExactNotAdditive(t *testing.T) {
	var c Cart
	c.AddLine(ringGold, 5)
	c.SetQuantity(ringGold.ID, 2)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	var c Cart
	c.AddLine(ringGold, 1)
	c.AddLine(chainLong, 1)

	c.SetQuantity(ringGold.ID, 0)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, chainLong.ID, c.Lines[0].ProductID)

	c.SetQuantity(chainLong.ID, -3)
	assert.True(t, c.IsEmpty())
}

func TestCartRemoveAbsentIsNoOp(t *testing.T) {
	var c Cart
	c.AddLine(ringGold, 1)

	c.RemoveLine("p-unknown")

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(2000), c.Total())
}

func TestCartClear(t *testing.T) {
	var c Cart
	c.AddLine(ringGold, 2)
	c.AddLine(chainLong, 4)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Total())
}

func TestCartLinesKeepInsertionOrder(t *testing.T) {
	var c Cart
	c.AddLine(chainLong, 1)
	c.AddLine(ringGold, 1)
	c.AddLine(studSimple, 1)
	c.AddLine(ringGold, 1)

	require.Len(t, c.Lines, 3)
	assert.Equal(t, chainLong.ID, c.Lines[0].ProductID)
	assert.Equal(t, ringGold.ID, c.Lines[1].ProductID)
	assert.Equal(t, studSimple.ID, c.Lines[2].ProductID)
}

package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCells(t *testing.T) {
	assert.Equal(t, 0, Cells(0))
	assert.Equal(t, 0, Cells(-4))
	assert.Equal(t, 1, Cells(System.Spacing.XS))
	assert.Equal(t, 1, Cells(System.Spacing.SM))
	assert.Equal(t, 2, Cells(System.Spacing.MD))
	assert.Equal(t, 3, Cells(System.Spacing.LG))
	assert.Equal(t, 4, Cells(System.Spacing.XL))
}

func TestBoldWeights(t *testing.T) {
	assert.True(t, System.Typography.Hero.Bold())
	assert.True(t, System.Typography.Title.Bold())
	assert.False(t, System.Typography.Body.Bold())
	assert.False(t, System.Typography.Caption.Bold())
}

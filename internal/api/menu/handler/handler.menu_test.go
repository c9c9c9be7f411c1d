// Package menuhdl - Test build map $set cho partial update thực đơn.
package menuhdl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	menudto "menu_board/internal/api/menu/dto"
)

func strPtr(s string) *string { return &s }

func TestUpdateSetFromInput_ChiSetFieldCoGui(t *testing.T) {
	set := updateSetFromInput(&menudto.MenuUpdateInput{Name: "Thực đơn trưa"})

	assert.Equal(t, map[string]interface{}{"name": "Thực đơn trưa"}, set)
}

func TestUpdateSetFromInput_DescriptionRongXoaMoTa(t *testing.T) {
	set := updateSetFromInput(&menudto.MenuUpdateInput{Description: strPtr("")})

	assert.Equal(t, "", set["description"])
	assert.NotContains(t, set, "name")
}

func TestUpdateSetFromInput_KhongCoGiRong(t *testing.T) {
	assert.Empty(t, updateSetFromInput(&menudto.MenuUpdateInput{}))
}

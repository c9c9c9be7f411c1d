// Package restauranthdl - Test build map $set cho partial update nhà hàng.
package restauranthdl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	restaurantdto "menu_board/internal/api/restaurant/dto"
)

func strPtr(s string) *string { return &s }

func TestUpdateSetFromInput_ChiSetFieldCoGui(t *testing.T) {
	set := updateSetFromInput(&restaurantdto.RestaurantUpdateInput{
		Name:  "Quán Ngon",
		Phone: strPtr("0901234567"),
	})

	assert.Equal(t, map[string]interface{}{
		"name":  "Quán Ngon",
		"phone": "0901234567",
	}, set)
}

func TestUpdateSetFromInput_ChuoiRongXoaGiaTriCu(t *testing.T) {
	set := updateSetFromInput(&restaurantdto.RestaurantUpdateInput{
		Description: strPtr(""),
		Address:     strPtr(""),
	})

	assert.Equal(t, "", set["description"])
	assert.Equal(t, "", set["address"])
	assert.NotContains(t, set, "name")
	assert.NotContains(t, set, "phone")
}

func TestUpdateSetFromInput_KhongCoGiRong(t *testing.T) {
	assert.Empty(t, updateSetFromInput(&restaurantdto.RestaurantUpdateInput{}))
}

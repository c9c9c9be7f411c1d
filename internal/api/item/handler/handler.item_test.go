// Package itemhdl - Test build map $set cho partial update món ăn.
package itemhdl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itemdto "menu_board/internal/api/item/dto"
)

func strPtr(s string) *string { return &s }

func TestUpdateSetFromInput_FieldNilKhongCapNhat(t *testing.T) {
	set := updateSetFromInput(&itemdto.ItemUpdateInput{Name: "Phở bò"})

	assert.Equal(t, map[string]interface{}{"name": "Phở bò"}, set)
}

func TestUpdateSetFromInput_ChuoiRongXoaGiaTriCu(t *testing.T) {
	// Gửi description/category rỗng là xóa, khác với không gửi
	set := updateSetFromInput(&itemdto.ItemUpdateInput{
		Description: strPtr(""),
		Category:    strPtr(""),
	})

	assert.Equal(t, "", set["description"])
	assert.Equal(t, "", set["category"])
	assert.NotContains(t, set, "name")
	assert.NotContains(t, set, "price")
}

func TestUpdateSetFromInput_DayDuField(t *testing.T) {
	price := 45000.0
	available := false
	set := updateSetFromInput(&itemdto.ItemUpdateInput{
		Name:        "Bún chả",
		Description: strPtr("Kèm nem rán"),
		Price:       &price,
		Category:    strPtr("Món chính"),
		ImageURL:    strPtr("https://cdn.example.com/bun-cha.jpg"),
		IsAvailable: &available,
	})

	assert.Len(t, set, 6)
	assert.Equal(t, 45000.0, set["price"])
	assert.Equal(t, false, set["isAvailable"])
}

func TestUpdateSetFromInput_KhongCoGiRong(t *testing.T) {
	set := updateSetFromInput(&itemdto.ItemUpdateInput{})
	assert.Empty(t, set)
}

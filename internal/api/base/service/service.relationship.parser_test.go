// Package basesvc - Test parse struct tag relationship.
package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type relTagModel struct {
	_Relationships struct{} `relationship:"collection:menus,field:itemIds,message:Món đang nằm trong thực đơn|collection:schedules,field:menuId,cascade:true"`
	Name           string   `bson:"name"`
}

func TestParseRelationshipTag(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(relTagModel{}))
	assert.Len(t, rels, 2)

	assert.Equal(t, "menus", rels[0].CollectionName)
	assert.Equal(t, "itemIds", rels[0].FieldName)
	assert.Equal(t, "Món đang nằm trong thực đơn", rels[0].ErrorMessage)
	assert.False(t, rels[0].Cascade)

	assert.Equal(t, "schedules", rels[1].CollectionName)
	assert.Equal(t, "menuId", rels[1].FieldName)
	assert.True(t, rels[1].Cascade)
	// Không khai báo message thì sinh message mặc định
	assert.NotEmpty(t, rels[1].ErrorMessage)
}

func TestParseRelationshipTagValue_BoQuaPhanThieu(t *testing.T) {
	// Thiếu field: bỏ qua định nghĩa
	rels := parseRelationshipTagValue("collection:menus")
	assert.Empty(t, rels)

	// Phần rỗng giữa các dấu | được bỏ qua
	rels = parseRelationshipTagValue("collection:menus,field:itemIds||")
	assert.Len(t, rels, 1)
}

func TestParseRelationshipTagValue_OptionalVaCascade(t *testing.T) {
	rels := parseRelationshipTagValue("collection:displays,field:menuId,optional:1,cascade:1")
	assert.Len(t, rels, 1)
	assert.True(t, rels[0].Optional)
	assert.True(t, rels[0].Cascade)

	rels = parseRelationshipTagValue("collection:displays,field:menuId,cascade:false")
	assert.False(t, rels[0].Cascade)
}

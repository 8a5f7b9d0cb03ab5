package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileNil(t *testing.T) {
	sql, args := Compile(nil)
	assert.Empty(t, sql)
	assert.Nil(t, args)
}

func TestEqCompile(t *testing.T) {
	sql, args := Compile(Eq("status", "active"))
	assert.Equal(t, "status = ?", sql)
	assert.Equal(t, []interface{}{"active"}, args)
}

func TestContainsCompile(t *testing.T) {
	sql, args := Compile(Contains("name", "WiDGet"))
	assert.Equal(t, "LOWER(name) LIKE ?", sql)
	assert.Equal(t, []interface{}{"%widget%"}, args)
}

func TestAndCompile(t *testing.T) {
	sql, args := Compile(And(Eq("status", "active"), Eq("category", "tools")))
	assert.Equal(t, "(status = ? AND category = ?)", sql)
	assert.Equal(t, []interface{}{"active", "tools"}, args)
}

func TestOrCompile(t *testing.T) {
	sql, args := Compile(Or(Contains("name", "drill"), Contains("sku", "drill")))
	assert.Equal(t, "(LOWER(name) LIKE ? OR LOWER(sku) LIKE ?)", sql)
	assert.Equal(t, []interface{}{"%drill%", "%drill%"}, args)
}

func TestCombineDropsNil(t *testing.T) {
	// Nil members disappear; a single survivor is returned without grouping
	sql, args := Compile(And(nil, Eq("status", "active"), nil))
	assert.Equal(t, "status = ?", sql)
	assert.Equal(t, []interface{}{"active"}, args)

	assert.Nil(t, And(nil, nil))
	assert.Nil(t, Or())
}

func TestNestedCompile(t *testing.T) {
	expr := And(
		Eq("status", "pending"),
		Or(Contains("order_id", "ord-17"), Contains("customer_name", "ord-17")),
	)

	sql, args := Compile(expr)
	assert.Equal(t, "(status = ? AND (LOWER(order_id) LIKE ? OR LOWER(customer_name) LIKE ?))", sql)
	assert.Equal(t, []interface{}{"pending", "%ord-17%", "%ord-17%"}, args)
}

package builder

import (
	"fmt"
	"strings"
)

type statementKind int

const (
	kindSelect statementKind = iota + 1
	kindInsert
	kindUpdate
	kindDelete
)

// SQLBuilder helps construct PostgreSQL queries dynamically.
// Conditions are written with `?` markers which Build rewrites to $1, $2, ...
// in the order they appear in the final statement.
type SQLBuilder struct {
	kind      statementKind
	table     string
	columns   []string
	values    []interface{}
	sets      []setClause
	joins     []string
	where     []condition
	ors       []condition
	groups    []*SQLBuilder
	orderBy   []string
	limit     int
	offset    int
	returning []string
}

type setClause struct {
	column string
	value  interface{}
}

type condition struct {
	sql  string
	args []interface{}
}

// Expression is a raw SQL fragment with `?` markers, usable as a Set value.
type Expression struct {
	sql  string
	args []interface{}
}

// Expr wraps a SQL fragment such as `COALESCE(?, col)` for use in Set.
func Expr(sql string, args ...interface{}) Expression {
	return Expression{sql: sql, args: args}
}

// NewSQLBuilder creates a new instance of SQLBuilder.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{}
}

// Select specifies the columns to retrieve.
func (b *SQLBuilder) Select(cols ...string) *SQLBuilder {
	b.kind = kindSelect
	b.columns = cols
	return b
}

// Insert specifies the table and columns for insertion.
func (b *SQLBuilder) Insert(table string, cols ...string) *SQLBuilder {
	b.kind = kindInsert
	b.table = table
	b.columns = cols
	return b
}

// Update specifies the table to update.
func (b *SQLBuilder) Update(table string) *SQLBuilder {
	b.kind = kindUpdate
	b.table = table
	return b
}

// Delete specifies the table to delete from.
func (b *SQLBuilder) Delete(table string) *SQLBuilder {
	b.kind = kindDelete
	b.table = table
	return b
}

// From specifies the table to select from.
func (b *SQLBuilder) From(table string) *SQLBuilder {
	b.table = table
	return b
}

// Set adds a column assignment to an UPDATE.
func (b *SQLBuilder) Set(col string, val interface{}) *SQLBuilder {
	b.sets = append(b.sets, setClause{column: col, value: val})
	return b
}

// Values specifies the values for insertion, one per column.
func (b *SQLBuilder) Values(vals ...interface{}) *SQLBuilder {
	b.values = vals
	return b
}

// Where adds a condition. Conditions are combined with AND.
func (b *SQLBuilder) Where(cond string, args ...interface{}) *SQLBuilder {
	b.where = append(b.where, condition{sql: cond, args: args})
	return b
}

// Or adds an alternative to the AND chain of this builder.
// Inside a WhereGroup this yields `(a AND b OR c OR d)`.
func (b *SQLBuilder) Or(cond string, args ...interface{}) *SQLBuilder {
	b.ors = append(b.ors, condition{sql: cond, args: args})
	return b
}

// WhereGroup adds a parenthesized condition built by fn, ANDed with the rest.
// Empty groups are dropped.
func (b *SQLBuilder) WhereGroup(fn func(*SQLBuilder) *SQLBuilder) *SQLBuilder {
	g := fn(NewSQLBuilder())
	if g != nil && g.hasConditions() {
		b.groups = append(b.groups, g)
	}
	return b
}

// Join adds a JOIN clause.
func (b *SQLBuilder) Join(joinType, table, on string) *SQLBuilder {
	b.joins = append(b.joins, fmt.Sprintf("%s JOIN %s ON %s", joinType, table, on))
	return b
}

// OrderBy adds an ORDER BY clause.
func (b *SQLBuilder) OrderBy(order string) *SQLBuilder {
	b.orderBy = append(b.orderBy, order)
	return b
}

// Limit adds a LIMIT clause.
func (b *SQLBuilder) Limit(limit int) *SQLBuilder {
	b.limit = limit
	return b
}

// Offset adds an OFFSET clause.
func (b *SQLBuilder) Offset(offset int) *SQLBuilder {
	b.offset = offset
	return b
}

// Returning adds a RETURNING clause to INSERT, UPDATE or DELETE.
func (b *SQLBuilder) Returning(cols ...string) *SQLBuilder {
	b.returning = cols
	return b
}

func (b *SQLBuilder) hasConditions() bool {
	return len(b.where) > 0 || len(b.ors) > 0 || len(b.groups) > 0
}

// Build constructs the final SQL string and arguments.
func (b *SQLBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	p := &placeholders{}

	switch b.kind {
	case kindSelect:
		sb.WriteString("SELECT ")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(" FROM ")
		sb.WriteString(b.table)
		for _, join := range b.joins {
			sb.WriteString(" ")
			sb.WriteString(join)
		}
	case kindInsert:
		sb.WriteString("INSERT INTO ")
		sb.WriteString(b.table)
		sb.WriteString(" (")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(") VALUES (")
		marks := make([]string, len(b.values))
		for i, v := range b.values {
			marks[i] = p.next(v)
		}
		sb.WriteString(strings.Join(marks, ", "))
		sb.WriteString(")")
	case kindUpdate:
		sb.WriteString("UPDATE ")
		sb.WriteString(b.table)
		sb.WriteString(" SET ")
		clauses := make([]string, len(b.sets))
		for i, s := range b.sets {
			if expr, ok := s.value.(Expression); ok {
				clauses[i] = s.column + " = " + p.rewrite(condition{sql: expr.sql, args: expr.args})
				continue
			}
			clauses[i] = s.column + " = " + p.next(s.value)
		}
		sb.WriteString(strings.Join(clauses, ", "))
	case kindDelete:
		sb.WriteString("DELETE FROM ")
		sb.WriteString(b.table)
	}

	if b.kind != kindInsert && b.hasConditions() {
		sb.WriteString(" WHERE ")
		sb.WriteString(b.conditionExpr(p))
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", b.limit))
	}

	if b.offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET %d", b.offset))
	}

	if len(b.returning) > 0 {
		sb.WriteString(" RETURNING ")
		sb.WriteString(strings.Join(b.returning, ", "))
	}

	return sb.String(), p.args
}

// conditionExpr renders `and1 AND and2 AND (group) OR or1 OR or2`.
func (b *SQLBuilder) conditionExpr(p *placeholders) string {
	var ands []string
	for _, c := range b.where {
		ands = append(ands, p.rewrite(c))
	}
	for _, g := range b.groups {
		ands = append(ands, "("+g.conditionExpr(p)+")")
	}

	var parts []string
	if len(ands) > 0 {
		parts = append(parts, strings.Join(ands, " AND "))
	}
	for _, c := range b.ors {
		parts = append(parts, p.rewrite(c))
	}
	return strings.Join(parts, " OR ")
}

// placeholders numbers `?` markers and collects their arguments in order.
type placeholders struct {
	args []interface{}
}

func (p *placeholders) next(arg interface{}) string {
	p.args = append(p.args, arg)
	return fmt.Sprintf("$%d", len(p.args))
}

func (p *placeholders) rewrite(c condition) string {
	parts := strings.Split(c.sql, "?")
	var sb strings.Builder
	for i, part := range parts {
		sb.WriteString(part)
		if i < len(parts)-1 {
			var arg interface{}
			if i < len(c.args) {
				arg = c.args[i]
			}
			sb.WriteString(p.next(arg))
		}
	}
	return sb.String()
}

// Code generated by ent, DO NOT EDIT.

package textcontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TextContent {
	return predicate.TextContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TextContent {
	return predicate.TextContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TextContent {
	return predicate.TextContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TextContent {
	return predicate.TextContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TextContent {
	return predicate.TextContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TextContent {
	return predicate.TextContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TextContent {
	return predicate.TextContent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TextContent {
	return predicate.TextContent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TextContent {
	return predicate.TextContent(sql.FieldContainsFold(FieldID, id))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldBody, v))
}

// RefCount applies equality check predicate on the "ref_count" field. It's identical to RefCountEQ.
func RefCount(v int) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldRefCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.TextContent {
	return predicate.TextContent(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.TextContent {
	return predicate.TextContent(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.TextContent {
	return predicate.TextContent(sql.FieldContainsFold(FieldBody, v))
}

// RefCountEQ applies the EQ predicate on the "ref_count" field.
func RefCountEQ(v int) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldRefCount, v))
}

// RefCountNEQ applies the NEQ predicate on the "ref_count" field.
func RefCountNEQ(v int) predicate.TextContent {
	return predicate.TextContent(sql.FieldNEQ(FieldRefCount, v))
}

// RefCountIn applies the In predicate on the "ref_count" field.
func RefCountIn(vs ...int) predicate.TextContent {
	return predicate.TextContent(sql.FieldIn(FieldRefCount, vs...))
}

// RefCountNotIn applies the NotIn predicate on the "ref_count" field.
func RefCountNotIn(vs ...int) predicate.TextContent {
	return predicate.TextContent(sql.FieldNotIn(FieldRefCount, vs...))
}

// RefCountGT applies the GT predicate on the "ref_count" field.
func RefCountGT(v int) predicate.TextContent {
	return predicate.TextContent(sql.FieldGT(FieldRefCount, v))
}

// RefCountGTE applies the GTE predicate on the "ref_count" field.
func RefCountGTE(v int) predicate.TextContent {
	return predicate.TextContent(sql.FieldGTE(FieldRefCount, v))
}

// RefCountLT applies the LT predicate on the "ref_count" field.
func RefCountLT(v int) predicate.TextContent {
	return predicate.TextContent(sql.FieldLT(FieldRefCount, v))
}

// RefCountLTE applies the LTE predicate on the "ref_count" field.
func RefCountLTE(v int) predicate.TextContent {
	return predicate.TextContent(sql.FieldLTE(FieldRefCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TextContent {
	return predicate.TextContent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TextContent) predicate.TextContent {
	return predicate.TextContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TextContent) predicate.TextContent {
	return predicate.TextContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TextContent) predicate.TextContent {
	return predicate.TextContent(sql.NotPredicates(p))
}

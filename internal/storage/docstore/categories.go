package docstore

import (
	"context"
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Categories is the `categorias` collection.
type Categories struct {
	docs collection[table.Category]
}

var _ table.ICategoryTable = (*Categories)(nil)

func NewCategories(scope Scope) *Categories {
	return &Categories{docs: newCollection[table.Category](scope, table.CollectionCategories)}
}

func (c *Categories) FindByID(_ context.Context, id uuid.UUID) (*table.Category, error) {
	return c.docs.get(id)
}

func (c *Categories) List(_ context.Context, kind *table.CategoryKind) ([]*table.Category, error) {
	docs, err := c.docs.all()
	if err != nil {
		return nil, err
	}
	if kind != nil {
		docs = slices.DeleteFunc(docs, func(doc *table.Category) bool { return doc.Kind != *kind })
	}
	slices.SortStableFunc(docs, func(x, y *table.Category) int {
		return strings.Compare(strings.ToLower(x.Name), strings.ToLower(y.Name))
	})
	return docs, nil
}

func (c *Categories) Insert(_ context.Context, write *table.CategoryWrite) (uuid.UUID, error) {
	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}
	doc := &table.Category{ID: id}
	applyCategoryWrite(doc, write)
	if err := c.docs.put(id, doc); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *Categories) Update(_ context.Context, id uuid.UUID, write *table.CategoryWrite) error {
	return c.docs.modify(id, func(doc *table.Category) {
		applyCategoryWrite(doc, write)
	})
}

func (c *Categories) Delete(_ context.Context, id uuid.UUID) error {
	return c.docs.delete(id)
}

func applyCategoryWrite(doc *table.Category, write *table.CategoryWrite) {
	doc.Name = write.Name
	doc.Kind = write.Kind
	doc.Icon = write.Icon
	doc.Description = write.Description
	doc.DefaultAmount = write.DefaultAmount
}

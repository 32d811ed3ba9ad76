package commands

import (
	"context"

	"bookstore/internal/core/domain/model/catalog"
)

type CreateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

func NewCreateCategoryCommandHandler(uowFactory CategoryUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id assigned to the new category. A duplicate name fails
// with errs.ErrUniqueConstraintViolation.
func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	category, err := catalog.NewCategory(cmd.Name(), cmd.Description())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return category.ID(), nil
}

type UpdateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

func NewUpdateCategoryCommandHandler(uowFactory CategoryUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CategoryRepository()
	category, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = category.Edit(cmd.Name(), cmd.Description()); err != nil {
		return err
	}

	if err = repo.Update(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

func NewDeleteCategoryCommandHandler(uowFactory CategoryUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{uowFactory: uowFactory}
}

func (h DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CategoryRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

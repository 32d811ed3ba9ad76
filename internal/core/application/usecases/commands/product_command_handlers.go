package commands

import (
	"context"

	"bookstore/internal/core/domain/model/catalog"
)

type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := catalog.NewProduct(cmd.SerialNumber(), cmd.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = ensureCategoryExists(ctx, uow, product.CategoryID()); err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	repo := uow.ProductRepository()
	product, err := repo.Get(ctx, cmd.SerialNumber())
	if err != nil {
		return err
	}

	if err = product.Edit(cmd.Details()); err != nil {
		return err
	}

	if err = ensureCategoryExists(ctx, uow, product.CategoryID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	if err := uow.ProductRepository().Delete(ctx, cmd.SerialNumber()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureCategoryExists(ctx context.Context, uow CategoryRepoFactory, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	_, err := uow.CategoryRepository().Get(ctx, *categoryID)
	return err
}

package commands

import (
	"context"

	"bookstore/internal/core/domain/model/catalog"
)

type CreateDeliveryPersonCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

func NewCreateDeliveryPersonCommandHandler(uowFactory DeliveryPersonUoWFactory) CreateDeliveryPersonCommandHandler {
	return CreateDeliveryPersonCommandHandler{uowFactory: uowFactory}
}

func (h CreateDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryPersonCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	person, err := catalog.NewDeliveryPerson(cmd.NationalID(), cmd.Profile())
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

	if err = uow.DeliveryPersonRepository().Add(ctx, person); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateDeliveryPersonCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

func NewUpdateDeliveryPersonCommandHandler(uowFactory DeliveryPersonUoWFactory) UpdateDeliveryPersonCommandHandler {
	return UpdateDeliveryPersonCommandHandler{uowFactory: uowFactory}
}

func (h UpdateDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryPersonCommand) error {
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

	repo := uow.DeliveryPersonRepository()
	person, err := repo.Get(ctx, cmd.NationalID())
	if err != nil {
		return err
	}

	if err = person.Edit(cmd.Profile()); err != nil {
		return err
	}

	if err = repo.Update(ctx, person); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteDeliveryPersonCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

func NewDeleteDeliveryPersonCommandHandler(uowFactory DeliveryPersonUoWFactory) DeleteDeliveryPersonCommandHandler {
	return DeleteDeliveryPersonCommandHandler{uowFactory: uowFactory}
}

func (h DeleteDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryPersonCommand) error {
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

	if err := uow.DeliveryPersonRepository().Delete(ctx, cmd.NationalID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

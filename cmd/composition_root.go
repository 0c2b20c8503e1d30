package cmd

import (
	"pigeonpost/internal/adapters/out/postgres"
	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateEditCarrierCommandHandler() commands.EditCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateRetireCarrierCommandHandler() commands.RetireCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetireCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCarrierCommandHandler() commands.DeleteCarrierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateEditClientCommandHandler() commands.EditClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditClientCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLetterCommandHandler() commands.CreateLetterCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLetterCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeLetterStatusCommandHandler() commands.ChangeLetterStatusCommandHandler {
	var f commands.LetterUoWFactory = FuncLetterUoWFactory(func() commands.LetterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeLetterStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateEditLetterMessageCommandHandler() commands.EditLetterMessageCommandHandler {
	var f commands.LetterUoWFactory = FuncLetterUoWFactory(func() commands.LetterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditLetterMessageCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteLetterCommandHandler() commands.DeleteLetterCommandHandler {
	var f commands.LetterUoWFactory = FuncLetterUoWFactory(func() commands.LetterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteLetterCommandHandler(f)
}

func (c *CompositionRoot) CreateGetLettersQueryHandler() queries.GetLettersQueryHandler {
	return queries.NewGetLettersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLetterQueryHandler() queries.GetLetterQueryHandler {
	return queries.NewGetLetterQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarriersQueryHandler() queries.GetCarriersQueryHandler {
	return queries.NewGetCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierQueryHandler() queries.GetCarrierQueryHandler {
	return queries.NewGetCarrierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientsQueryHandler() queries.GetClientsQueryHandler {
	return queries.NewGetClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientQueryHandler() queries.GetClientQueryHandler {
	return queries.NewGetClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientLettersQueryHandler() queries.GetClientLettersQueryHandler {
	return queries.NewGetClientLettersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.gormDB)
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncLetterUoWFactory func() commands.LetterUoW

func (f FuncLetterUoWFactory) Create() commands.LetterUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"gridworks/internal/domain"
	"gridworks/internal/usecase"
)

// listParams is the uniform listing query surface. Normalization happens in
// the use case, so out-of-range values degrade to defaults instead of
// failing the request.
type listParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	Sort    string `query:"sort"`
	SortDir string `query:"sort_dir"`
	Filter  string `query:"filter"`
}

func (p listParams) pageQuery() domain.PageQuery {
	return domain.PageQuery{
		Page:    p.Page,
		PerPage: p.PerPage,
		Sort:    p.Sort,
		SortDir: p.SortDir,
		Filter:  p.Filter,
	}
}

// crud bundles the five operations of one resource for registration.
type crud[C, U, O any] struct {
	singular string
	plural   string
	create   func(context.Context, C) (O, error)
	get      func(context.Context, string) (O, error)
	list     func(context.Context, domain.PageQuery) (usecase.ListOutput[O], error)
	update   func(context.Context, string, U) (O, error)
	delete   func(context.Context, string) error
}

var mutationErrors = []int{
	http.StatusBadRequest,
	http.StatusUnauthorized,
	http.StatusNotFound,
	http.StatusConflict,
	http.StatusUnprocessableEntity,
	http.StatusInternalServerError,
}

func registerCRUD[C, U, O any](api huma.API, c crud[C, U, O]) {
	base := "/" + c.plural

	huma.Register(api, huma.Operation{
		OperationID:   "create-" + c.singular,
		Method:        http.MethodPost,
		Path:          base,
		Summary:       "Create " + c.singular,
		DefaultStatus: http.StatusCreated,
		Errors:        mutationErrors,
	}, func(ctx context.Context, input *struct {
		Body C `json:"body"`
	}) (*struct {
		Body O `json:"body"`
	}, error) {
		out, err := c.create(ctx, input.Body)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body O `json:"body"`
		}{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-" + c.plural,
		Method:      http.MethodGet,
		Path:        base,
		Summary:     fmt.Sprintf("List %s", c.plural),
		Errors:      []int{http.StatusUnauthorized},
	}, func(ctx context.Context, input *listParams) (*struct {
		Body usecase.ListOutput[O] `json:"body"`
	}, error) {
		out, err := c.list(ctx, input.pageQuery())
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body usecase.ListOutput[O] `json:"body"`
		}{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-" + c.singular,
		Method:      http.MethodGet,
		Path:        base + "/{id}",
		Summary:     "Get " + c.singular,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct {
		Body O `json:"body"`
	}, error) {
		out, err := c.get(ctx, input.ID)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body O `json:"body"`
		}{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-" + c.singular,
		Method:      http.MethodPatch,
		Path:        base + "/{id}",
		Summary:     "Update " + c.singular,
		Errors:      mutationErrors,
	}, func(ctx context.Context, input *struct {
		ID   string `path:"id"`
		Body U      `json:"body"`
	}) (*struct {
		Body O `json:"body"`
	}, error) {
		out, err := c.update(ctx, input.ID, input.Body)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body O `json:"body"`
		}{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-" + c.singular,
		Method:        http.MethodDelete,
		Path:          base + "/{id}",
		Summary:       "Delete " + c.singular,
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusUnauthorized, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID string `path:"id"`
	}) (*struct{}, error) {
		if err := c.delete(ctx, input.ID); err != nil {
			return nil, handleError(err)
		}
		return &struct{}{}, nil
	})
}

func registerEmployees(api huma.API, svc usecase.Service) {
	registerCRUD(api, crud[createEmployeeRequest, updateEmployeeRequest, usecase.EmployeeOutput]{
		singular: "employee",
		plural:   "employees",
		create: func(ctx context.Context, r createEmployeeRequest) (usecase.EmployeeOutput, error) {
			return svc.CreateEmployee(ctx, r.input())
		},
		get:  svc.GetEmployee,
		list: svc.ListEmployees,
		update: func(ctx context.Context, id string, r updateEmployeeRequest) (usecase.EmployeeOutput, error) {
			return svc.UpdateEmployee(ctx, id, r.patch())
		},
		delete: svc.DeleteEmployee,
	})
}

func registerEquipments(api huma.API, svc usecase.Service) {
	registerCRUD(api, crud[createEquipmentRequest, updateEquipmentRequest, usecase.EquipmentOutput]{
		singular: "equipment",
		plural:   "equipments",
		create: func(ctx context.Context, r createEquipmentRequest) (usecase.EquipmentOutput, error) {
			return svc.CreateEquipment(ctx, r.input())
		},
		get:  svc.GetEquipment,
		list: svc.ListEquipments,
		update: func(ctx context.Context, id string, r updateEquipmentRequest) (usecase.EquipmentOutput, error) {
			return svc.UpdateEquipment(ctx, id, r.patch())
		},
		delete: svc.DeleteEquipment,
	})
}

func registerTeams(api huma.API, svc usecase.Service) {
	registerCRUD(api, crud[createTeamRequest, updateTeamRequest, usecase.TeamOutput]{
		singular: "team",
		plural:   "teams",
		create: func(ctx context.Context, r createTeamRequest) (usecase.TeamOutput, error) {
			return svc.CreateTeam(ctx, r.input())
		},
		get:  svc.GetTeam,
		list: svc.ListTeams,
		update: func(ctx context.Context, id string, r updateTeamRequest) (usecase.TeamOutput, error) {
			return svc.UpdateTeam(ctx, id, r.patch())
		},
		delete: svc.DeleteTeam,
	})
}

func registerWorks(api huma.API, svc usecase.Service) {
	registerCRUD(api, crud[createWorkRequest, updateWorkRequest, usecase.WorkOutput]{
		singular: "work",
		plural:   "works",
		create: func(ctx context.Context, r createWorkRequest) (usecase.WorkOutput, error) {
			return svc.CreateWork(ctx, r.input())
		},
		get:  svc.GetWork,
		list: svc.ListWorks,
		update: func(ctx context.Context, id string, r updateWorkRequest) (usecase.WorkOutput, error) {
			return svc.UpdateWork(ctx, id, r.patch())
		},
		delete: svc.DeleteWork,
	})
}

func registerTowers(api huma.API, svc usecase.Service) {
	registerCRUD(api, crud[createTowerRequest, updateTowerRequest, usecase.TowerOutput]{
		singular: "tower",
		plural:   "towers",
		create: func(ctx context.Context, r createTowerRequest) (usecase.TowerOutput, error) {
			return svc.CreateTower(ctx, r.input())
		},
		get:  svc.GetTower,
		list: svc.ListTowers,
		update: func(ctx context.Context, id string, r updateTowerRequest) (usecase.TowerOutput, error) {
			return svc.UpdateTower(ctx, id, r.patch())
		},
		delete: svc.DeleteTower,
	})
}

func registerFoundations(api huma.API, svc usecase.Service) {
	registerCRUD(api, crud[createFoundationRequest, updateFoundationRequest, usecase.FoundationOutput]{
		singular: "foundation",
		plural:   "foundations",
		create: func(ctx context.Context, r createFoundationRequest) (usecase.FoundationOutput, error) {
			return svc.CreateFoundation(ctx, r.input())
		},
		get:  svc.GetFoundation,
		list: svc.ListFoundations,
		update: func(ctx context.Context, id string, r updateFoundationRequest) (usecase.FoundationOutput, error) {
			return svc.UpdateFoundation(ctx, id, r.patch())
		},
		delete: svc.DeleteFoundation,
	})
}

func registerTasks(api huma.API, svc usecase.Service) {
	registerCRUD(api, crud[createTaskRequest, updateTaskRequest, usecase.TaskOutput]{
		singular: "task",
		plural:   "tasks",
		create: func(ctx context.Context, r createTaskRequest) (usecase.TaskOutput, error) {
			return svc.CreateTask(ctx, r.input())
		},
		get:  svc.GetTask,
		list: svc.ListTasks,
		update: func(ctx context.Context, id string, r updateTaskRequest) (usecase.TaskOutput, error) {
			return svc.UpdateTask(ctx, id, r.patch())
		},
		delete: svc.DeleteTask,
	})
}

func registerProductions(api huma.API, svc usecase.Service) {
	registerCRUD(api, crud[createProductionRequest, updateProductionRequest, usecase.ProductionOutput]{
		singular: "production",
		plural:   "productions",
		create: func(ctx context.Context, r createProductionRequest) (usecase.ProductionOutput, error) {
			return svc.CreateProduction(ctx, r.input())
		},
		get:  svc.GetProduction,
		list: svc.ListProductions,
		update: func(ctx context.Context, id string, r updateProductionRequest) (usecase.ProductionOutput, error) {
			return svc.UpdateProduction(ctx, id, r.patch())
		},
		delete: svc.DeleteProduction,
	})
}

func registerUsers(api huma.API, svc usecase.Service) {
	registerCRUD(api, crud[createUserRequest, updateUserRequest, usecase.UserOutput]{
		singular: "user",
		plural:   "users",
		create: func(ctx context.Context, r createUserRequest) (usecase.UserOutput, error) {
			return svc.CreateUser(ctx, r.input())
		},
		get:  svc.GetUser,
		list: svc.ListUsers,
		update: func(ctx context.Context, id string, r updateUserRequest) (usecase.UserOutput, error) {
			return svc.UpdateUser(ctx, id, r.input())
		},
		delete: svc.DeleteUser,
	})
}

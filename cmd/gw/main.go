package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gridworks/internal/app"
	"gridworks/internal/config"
	"gridworks/internal/db"
	"gridworks/internal/domain"
	"gridworks/internal/server"
	"gridworks/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "gw",
	Short: "Gridworks CLI",
	Long: `Gridworks tracks the resources of transmission-line construction projects.
- Workspace: the .gridworks directory next to you holds the database; 'gw init' writes a starter gridworks.yml.
- Works: the transmission lines under construction; towers, tasks and productions hang off them.
- Teams: crews of employees and equipments; membership is exclusive, assigning a member moves it.
- Towers: line structures with their foundations embedded in every read.
- Productions: daily records tying a task and teams to the towers worked on.
- Users: API operators; 'gw serve' exposes the same operations over HTTP with bearer tokens.
- Event log: diary of changes, view with 'gw log tail'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		workspace := viper.GetString("workspace")
		if _, err := db.EnsureWorkspace(workspace); err != nil {
			return err
		}
		return nil
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("GRIDWORKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func registerCommands() {
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(employeeCmd())
	rootCmd.AddCommand(equipmentCmd())
	rootCmd.AddCommand(teamCmd())
	rootCmd.AddCommand(workCmd())
	rootCmd.AddCommand(towerCmd())
	rootCmd.AddCommand(foundationCmd())
	rootCmd.AddCommand(taskCmd())
	rootCmd.AddCommand(productionCmd())
	rootCmd.AddCommand(userCmd())
	rootCmd.AddCommand(logCmd())
	rootCmd.AddCommand(serveCmd())
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := viper.GetString("workspace")
			path := config.Path(workspace)
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("%s already exists, leaving it alone\n", path)
			} else if os.IsNotExist(err) {
				if err := os.WriteFile(path, []byte(config.GenerateDefault()), 0o644); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", path)
			} else {
				return err
			}
			env, err := app.Open(workspace)
			if err != nil {
				return err
			}
			defer env.Close()
			fmt.Printf("Database ready at %s\n", db.Path(workspace))
			return nil
		},
	}
	return cmd
}

// --- employees ---

func employeeCmd() *cobra.Command {
	emp := &cobra.Command{Use: "employee", Short: "Manage employees"}
	emp.AddCommand(employeeCreateCmd())
	emp.AddCommand(employeeListCmd())
	emp.AddCommand(employeeShowCmd())
	emp.AddCommand(employeeUpdateCmd())
	emp.AddCommand(employeeDeleteCmd())
	return emp
}

func employeeCreateCmd() *cobra.Command {
	var in usecase.CreateEmployeeInput
	var status, team string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Status = domain.EmployeeStatus(status)
			in.TeamID = changedString(cmd, "team", team)
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				e, err := env.Service.CreateEmployee(ctx, in)
				if err != nil {
					return err
				}
				return printJSONOrTable(e)
			})
		},
	}
	cmd.Flags().StringVar(&in.Registration, "registration", "", "registration number")
	cmd.Flags().StringVar(&in.FullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&in.Occupation, "occupation", "", "occupation")
	cmd.Flags().BoolVar(&in.Leadership, "leadership", false, "leadership role")
	cmd.Flags().StringVar(&status, "status", "", "status (ACTIVE, ON_LEAVE, INACTIVE)")
	cmd.Flags().StringVar(&team, "team", "", "team id")
	_ = cmd.MarkFlagRequired("registration")
	_ = cmd.MarkFlagRequired("full-name")
	return cmd
}

func employeeListCmd() *cobra.Command {
	var q domain.PageQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.ListEmployees(ctx, q)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(out.Total)
				tw.AppendHeader(table.Row{"ID", "Registration", "Name", "Occupation", "Status", "Team"})
				for _, e := range out.Items {
					tw.AppendRow(table.Row{e.ID, e.Registration, e.FullName, e.Occupation, e.Status, deref(e.TeamID)})
				}
				tw.Render()
				return nil
			})
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func employeeShowCmd() *cobra.Command {
	return showCmd("employee", func(ctx context.Context, env *app.Env, id string) (any, error) {
		return env.Service.GetEmployee(ctx, id)
	})
}

func employeeUpdateCmd() *cobra.Command {
	var registration, fullName, occupation, status, team string
	var leadership bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.EmployeePatch{
				Registration: changedString(cmd, "registration", registration),
				FullName:     changedString(cmd, "full-name", fullName),
				Occupation:   changedString(cmd, "occupation", occupation),
				TeamID:       changedString(cmd, "team", team),
			}
			if cmd.Flags().Changed("leadership") {
				p.Leadership = &leadership
			}
			if cmd.Flags().Changed("status") {
				s := domain.EmployeeStatus(status)
				p.Status = &s
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				e, err := env.Service.UpdateEmployee(ctx, args[0], p)
				if err != nil {
					return err
				}
				return printJSONOrTable(e)
			})
		},
	}
	cmd.Flags().StringVar(&registration, "registration", "", "registration number")
	cmd.Flags().StringVar(&fullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&occupation, "occupation", "", "occupation")
	cmd.Flags().BoolVar(&leadership, "leadership", false, "leadership role")
	cmd.Flags().StringVar(&status, "status", "", "status (ACTIVE, ON_LEAVE, INACTIVE)")
	cmd.Flags().StringVar(&team, "team", "", "team id (empty detaches)")
	return cmd
}

func employeeDeleteCmd() *cobra.Command {
	return deleteCmd("employee", func(ctx context.Context, env *app.Env, id string) error {
		return env.Service.DeleteEmployee(ctx, id)
	})
}

// --- equipments ---

func equipmentCmd() *cobra.Command {
	eq := &cobra.Command{Use: "equipment", Short: "Manage equipments"}
	eq.AddCommand(equipmentCreateCmd())
	eq.AddCommand(equipmentListCmd())
	eq.AddCommand(equipmentShowCmd())
	eq.AddCommand(equipmentUpdateCmd())
	eq.AddCommand(equipmentDeleteCmd())
	return eq
}

func equipmentCreateCmd() *cobra.Command {
	var in usecase.CreateEquipmentInput
	var status, team string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Status = domain.EquipmentStatus(status)
			in.TeamID = changedString(cmd, "team", team)
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				e, err := env.Service.CreateEquipment(ctx, in)
				if err != nil {
					return err
				}
				return printJSONOrTable(e)
			})
		},
	}
	cmd.Flags().StringVar(&in.Registration, "registration", "", "registration number")
	cmd.Flags().StringVar(&in.Model, "model", "", "model")
	cmd.Flags().StringVar(&in.Manufacturer, "manufacturer", "", "manufacturer")
	cmd.Flags().StringVar(&in.LicensePlate, "license-plate", "", "license plate")
	cmd.Flags().StringVar(&in.Provider, "provider", "", "provider")
	cmd.Flags().StringVar(&status, "status", "", "status (ACTIVE, MAINTENANCE, INACTIVE)")
	cmd.Flags().StringVar(&team, "team", "", "team id")
	_ = cmd.MarkFlagRequired("registration")
	return cmd
}

func equipmentListCmd() *cobra.Command {
	var q domain.PageQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List equipments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.ListEquipments(ctx, q)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(out.Total)
				tw.AppendHeader(table.Row{"ID", "Registration", "Model", "Manufacturer", "Status", "Team"})
				for _, e := range out.Items {
					tw.AppendRow(table.Row{e.ID, e.Registration, e.Model, e.Manufacturer, e.Status, deref(e.TeamID)})
				}
				tw.Render()
				return nil
			})
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func equipmentShowCmd() *cobra.Command {
	return showCmd("equipment", func(ctx context.Context, env *app.Env, id string) (any, error) {
		return env.Service.GetEquipment(ctx, id)
	})
}

func equipmentUpdateCmd() *cobra.Command {
	var registration, model, manufacturer, plate, provider, status, team string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an equipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.EquipmentPatch{
				Registration: changedString(cmd, "registration", registration),
				Model:        changedString(cmd, "model", model),
				Manufacturer: changedString(cmd, "manufacturer", manufacturer),
				LicensePlate: changedString(cmd, "license-plate", plate),
				Provider:     changedString(cmd, "provider", provider),
				TeamID:       changedString(cmd, "team", team),
			}
			if cmd.Flags().Changed("status") {
				s := domain.EquipmentStatus(status)
				p.Status = &s
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				e, err := env.Service.UpdateEquipment(ctx, args[0], p)
				if err != nil {
					return err
				}
				return printJSONOrTable(e)
			})
		},
	}
	cmd.Flags().StringVar(&registration, "registration", "", "registration number")
	cmd.Flags().StringVar(&model, "model", "", "model")
	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "manufacturer")
	cmd.Flags().StringVar(&plate, "license-plate", "", "license plate")
	cmd.Flags().StringVar(&provider, "provider", "", "provider")
	cmd.Flags().StringVar(&status, "status", "", "status (ACTIVE, MAINTENANCE, INACTIVE)")
	cmd.Flags().StringVar(&team, "team", "", "team id (empty detaches)")
	return cmd
}

func equipmentDeleteCmd() *cobra.Command {
	return deleteCmd("equipment", func(ctx context.Context, env *app.Env, id string) error {
		return env.Service.DeleteEquipment(ctx, id)
	})
}

// --- teams ---

func teamCmd() *cobra.Command {
	team := &cobra.Command{Use: "team", Short: "Manage teams"}
	team.AddCommand(teamCreateCmd())
	team.AddCommand(teamListCmd())
	team.AddCommand(teamShowCmd())
	team.AddCommand(teamUpdateCmd())
	team.AddCommand(teamDeleteCmd())
	return team
}

func teamCreateCmd() *cobra.Command {
	var in usecase.CreateTeamInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				t, err := env.Service.CreateTeam(ctx, in)
				if err != nil {
					return err
				}
				return printJSONOrTable(t)
			})
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "team name")
	cmd.Flags().StringArrayVar(&in.EmployeeIDs, "employee", []string{}, "member employee id (repeatable)")
	cmd.Flags().StringArrayVar(&in.EquipmentIDs, "equipment", []string{}, "member equipment id (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func teamListCmd() *cobra.Command {
	var q domain.PageQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.ListTeams(ctx, q)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(out.Total)
				tw.AppendHeader(table.Row{"ID", "Name", "Employees", "Equipments"})
				for _, t := range out.Items {
					tw.AppendRow(table.Row{t.ID, t.Name, len(t.Employees), len(t.Equipments)})
				}
				tw.Render()
				return nil
			})
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func teamShowCmd() *cobra.Command {
	return showCmd("team", func(ctx context.Context, env *app.Env, id string) (any, error) {
		return env.Service.GetTeam(ctx, id)
	})
}

func teamUpdateCmd() *cobra.Command {
	var name string
	var employees, equipments []string
	var clearEmployees, clearEquipments bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.TeamPatch{Name: changedString(cmd, "name", name)}
			if cmd.Flags().Changed("employee") || clearEmployees {
				p.EmployeeIDs = employees
				if clearEmployees {
					p.EmployeeIDs = []string{}
				}
			}
			if cmd.Flags().Changed("equipment") || clearEquipments {
				p.EquipmentIDs = equipments
				if clearEquipments {
					p.EquipmentIDs = []string{}
				}
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				t, err := env.Service.UpdateTeam(ctx, args[0], p)
				if err != nil {
					return err
				}
				return printJSONOrTable(t)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "team name")
	cmd.Flags().StringArrayVar(&employees, "employee", []string{}, "replacement employee id (repeatable)")
	cmd.Flags().StringArrayVar(&equipments, "equipment", []string{}, "replacement equipment id (repeatable)")
	cmd.Flags().BoolVar(&clearEmployees, "clear-employees", false, "remove all employees")
	cmd.Flags().BoolVar(&clearEquipments, "clear-equipments", false, "remove all equipments")
	return cmd
}

func teamDeleteCmd() *cobra.Command {
	return deleteCmd("team", func(ctx context.Context, env *app.Env, id string) error {
		return env.Service.DeleteTeam(ctx, id)
	})
}

// --- works ---

func workCmd() *cobra.Command {
	work := &cobra.Command{Use: "work", Short: "Manage works"}
	work.AddCommand(workCreateCmd())
	work.AddCommand(workListCmd())
	work.AddCommand(workShowCmd())
	work.AddCommand(workUpdateCmd())
	work.AddCommand(workDeleteCmd())
	return work
}

func workCreateCmd() *cobra.Command {
	var in usecase.CreateWorkInput
	var tension, extension, startDate, endDate string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a work",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Tension = changedString(cmd, "tension", tension)
			in.Extension = changedString(cmd, "extension", extension)
			in.StartDate = changedString(cmd, "start-date", startDate)
			in.EndDate = changedString(cmd, "end-date", endDate)
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				w, err := env.Service.CreateWork(ctx, in)
				if err != nil {
					return err
				}
				return printJSONOrTable(w)
			})
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "work name")
	cmd.Flags().StringVar(&tension, "tension", "", "line tension, e.g. 500kV")
	cmd.Flags().StringVar(&extension, "extension", "", "line extension, e.g. 120km")
	cmd.Flags().StringVar(&startDate, "start-date", "", "start date")
	cmd.Flags().StringVar(&endDate, "end-date", "", "end date")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func workListCmd() *cobra.Command {
	var q domain.PageQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List works",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.ListWorks(ctx, q)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(out.Total)
				tw.AppendHeader(table.Row{"ID", "Name", "Tension", "Extension", "Start", "End"})
				for _, w := range out.Items {
					tw.AppendRow(table.Row{w.ID, w.Name, deref(w.Tension), deref(w.Extension), deref(w.StartDate), deref(w.EndDate)})
				}
				tw.Render()
				return nil
			})
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func workShowCmd() *cobra.Command {
	return showCmd("work", func(ctx context.Context, env *app.Env, id string) (any, error) {
		return env.Service.GetWork(ctx, id)
	})
}

func workUpdateCmd() *cobra.Command {
	var name, tension, extension, startDate, endDate string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a work",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.WorkPatch{
				Name:      changedString(cmd, "name", name),
				Tension:   changedString(cmd, "tension", tension),
				Extension: changedString(cmd, "extension", extension),
				StartDate: changedString(cmd, "start-date", startDate),
				EndDate:   changedString(cmd, "end-date", endDate),
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				w, err := env.Service.UpdateWork(ctx, args[0], p)
				if err != nil {
					return err
				}
				return printJSONOrTable(w)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "work name")
	cmd.Flags().StringVar(&tension, "tension", "", "line tension (empty clears)")
	cmd.Flags().StringVar(&extension, "extension", "", "line extension (empty clears)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "start date (empty clears)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "end date (empty clears)")
	return cmd
}

func workDeleteCmd() *cobra.Command {
	return deleteCmd("work", func(ctx context.Context, env *app.Env, id string) error {
		return env.Service.DeleteWork(ctx, id)
	})
}

// --- towers ---

func towerCmd() *cobra.Command {
	tower := &cobra.Command{Use: "tower", Short: "Manage towers"}
	tower.AddCommand(towerCreateCmd())
	tower.AddCommand(towerListCmd())
	tower.AddCommand(towerShowCmd())
	tower.AddCommand(towerUpdateCmd())
	tower.AddCommand(towerDeleteCmd())
	return tower
}

func towerCreateCmd() *cobra.Command {
	var in usecase.CreateTowerInput
	var height, weight float64
	var foundationDate, erectionDate, tensioningDate, observations string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tower",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Height = changedFloat(cmd, "height", height)
			in.Weight = changedFloat(cmd, "weight", weight)
			in.FoundationDate = changedString(cmd, "foundation-date", foundationDate)
			in.ErectionDate = changedString(cmd, "erection-date", erectionDate)
			in.TensioningDate = changedString(cmd, "tensioning-date", tensioningDate)
			in.Observations = changedString(cmd, "observations", observations)
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				t, err := env.Service.CreateTower(ctx, in)
				if err != nil {
					return err
				}
				return printJSONOrTable(t)
			})
		},
	}
	cmd.Flags().IntVar(&in.Code, "code", 0, "tower code")
	cmd.Flags().StringVar(&in.TowerNumber, "number", "", "tower number, e.g. 102/3")
	cmd.Flags().StringVar(&in.Type, "type", "", "tower type")
	cmd.Flags().Float64Var(&in.Latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&in.Longitude, "lon", 0, "longitude")
	cmd.Flags().Float64Var(&height, "height", 0, "height in meters")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in tons")
	cmd.Flags().StringVar(&foundationDate, "foundation-date", "", "foundation completion date")
	cmd.Flags().StringVar(&erectionDate, "erection-date", "", "erection completion date")
	cmd.Flags().StringVar(&tensioningDate, "tensioning-date", "", "tensioning completion date")
	cmd.Flags().StringVar(&observations, "observations", "", "free-form notes")
	cmd.Flags().BoolVar(&in.Hidden, "hidden", false, "hide from default map views")
	cmd.Flags().StringVar(&in.WorkID, "work", "", "owning work id")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("work")
	return cmd
}

func towerListCmd() *cobra.Command {
	var q domain.PageQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List towers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.ListTowers(ctx, q)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(out.Total)
				tw.AppendHeader(table.Row{"ID", "Number", "Type", "Work", "Foundations", "Erected"})
				for _, t := range out.Items {
					tw.AppendRow(table.Row{t.ID, t.TowerNumber, t.Type, t.WorkID, len(t.Foundations), deref(t.ErectionDate)})
				}
				tw.Render()
				return nil
			})
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func towerShowCmd() *cobra.Command {
	return showCmd("tower", func(ctx context.Context, env *app.Env, id string) (any, error) {
		return env.Service.GetTower(ctx, id)
	})
}

func towerUpdateCmd() *cobra.Command {
	var code int
	var number, typ, foundationDate, erectionDate, tensioningDate, observations, work string
	var lat, lon, height, weight float64
	var hidden bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a tower",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.TowerPatch{
				TowerNumber:    changedString(cmd, "number", number),
				Type:           changedString(cmd, "type", typ),
				Latitude:       changedFloat(cmd, "lat", lat),
				Longitude:      changedFloat(cmd, "lon", lon),
				Height:         changedFloat(cmd, "height", height),
				Weight:         changedFloat(cmd, "weight", weight),
				FoundationDate: changedString(cmd, "foundation-date", foundationDate),
				ErectionDate:   changedString(cmd, "erection-date", erectionDate),
				TensioningDate: changedString(cmd, "tensioning-date", tensioningDate),
				Observations:   changedString(cmd, "observations", observations),
				WorkID:         changedString(cmd, "work", work),
			}
			if cmd.Flags().Changed("code") {
				p.Code = &code
			}
			if cmd.Flags().Changed("hidden") {
				p.Hidden = &hidden
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				t, err := env.Service.UpdateTower(ctx, args[0], p)
				if err != nil {
					return err
				}
				return printJSONOrTable(t)
			})
		},
	}
	cmd.Flags().IntVar(&code, "code", 0, "tower code")
	cmd.Flags().StringVar(&number, "number", "", "tower number")
	cmd.Flags().StringVar(&typ, "type", "", "tower type")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().Float64Var(&height, "height", 0, "height in meters")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in tons")
	cmd.Flags().StringVar(&foundationDate, "foundation-date", "", "foundation completion date (empty clears)")
	cmd.Flags().StringVar(&erectionDate, "erection-date", "", "erection completion date (empty clears)")
	cmd.Flags().StringVar(&tensioningDate, "tensioning-date", "", "tensioning completion date (empty clears)")
	cmd.Flags().StringVar(&observations, "observations", "", "free-form notes (empty clears)")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "hide from default map views")
	cmd.Flags().StringVar(&work, "work", "", "owning work id")
	return cmd
}

func towerDeleteCmd() *cobra.Command {
	return deleteCmd("tower", func(ctx context.Context, env *app.Env, id string) error {
		return env.Service.DeleteTower(ctx, id)
	})
}

// --- foundations ---

func foundationCmd() *cobra.Command {
	fnd := &cobra.Command{Use: "foundation", Short: "Manage foundations"}
	fnd.AddCommand(foundationCreateCmd())
	fnd.AddCommand(foundationListCmd())
	fnd.AddCommand(foundationShowCmd())
	fnd.AddCommand(foundationUpdateCmd())
	fnd.AddCommand(foundationDeleteCmd())
	return fnd
}

func foundationCreateCmd() *cobra.Command {
	var in usecase.CreateFoundationInput
	var excavation, concrete, backfill, steel float64
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a foundation",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.ExcavationVolume = changedFloat(cmd, "excavation-volume", excavation)
			in.ConcreteVolume = changedFloat(cmd, "concrete-volume", concrete)
			in.BackfillVolume = changedFloat(cmd, "backfill-volume", backfill)
			in.SteelWeight = changedFloat(cmd, "steel-weight", steel)
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				f, err := env.Service.CreateFoundation(ctx, in)
				if err != nil {
					return err
				}
				return printJSONOrTable(f)
			})
		},
	}
	cmd.Flags().StringVar(&in.TowerID, "tower", "", "owning tower id")
	cmd.Flags().StringVar(&in.Project, "project", "", "foundation project reference")
	cmd.Flags().StringVar(&in.Revision, "revision", "", "project revision")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
	cmd.Flags().Float64Var(&excavation, "excavation-volume", 0, "excavation volume in m3")
	cmd.Flags().Float64Var(&concrete, "concrete-volume", 0, "concrete volume in m3")
	cmd.Flags().Float64Var(&backfill, "backfill-volume", 0, "backfill volume in m3")
	cmd.Flags().Float64Var(&steel, "steel-weight", 0, "steel weight in kg")
	_ = cmd.MarkFlagRequired("tower")
	return cmd
}

func foundationListCmd() *cobra.Command {
	var q domain.PageQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List foundations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.ListFoundations(ctx, q)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(out.Total)
				tw.AppendHeader(table.Row{"ID", "Tower", "Project", "Revision", "Description"})
				for _, f := range out.Items {
					tw.AppendRow(table.Row{f.ID, f.TowerID, f.Project, f.Revision, f.Description})
				}
				tw.Render()
				return nil
			})
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func foundationShowCmd() *cobra.Command {
	return showCmd("foundation", func(ctx context.Context, env *app.Env, id string) (any, error) {
		return env.Service.GetFoundation(ctx, id)
	})
}

func foundationUpdateCmd() *cobra.Command {
	var project, revision, description string
	var excavation, concrete, backfill, steel float64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a foundation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.FoundationPatch{
				Project:          changedString(cmd, "project", project),
				Revision:         changedString(cmd, "revision", revision),
				Description:      changedString(cmd, "description", description),
				ExcavationVolume: changedFloat(cmd, "excavation-volume", excavation),
				ConcreteVolume:   changedFloat(cmd, "concrete-volume", concrete),
				BackfillVolume:   changedFloat(cmd, "backfill-volume", backfill),
				SteelWeight:      changedFloat(cmd, "steel-weight", steel),
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				f, err := env.Service.UpdateFoundation(ctx, args[0], p)
				if err != nil {
					return err
				}
				return printJSONOrTable(f)
			})
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "foundation project reference")
	cmd.Flags().StringVar(&revision, "revision", "", "project revision")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().Float64Var(&excavation, "excavation-volume", 0, "excavation volume in m3")
	cmd.Flags().Float64Var(&concrete, "concrete-volume", 0, "concrete volume in m3")
	cmd.Flags().Float64Var(&backfill, "backfill-volume", 0, "backfill volume in m3")
	cmd.Flags().Float64Var(&steel, "steel-weight", 0, "steel weight in kg")
	return cmd
}

func foundationDeleteCmd() *cobra.Command {
	return deleteCmd("foundation", func(ctx context.Context, env *app.Env, id string) error {
		return env.Service.DeleteFoundation(ctx, id)
	})
}

// --- tasks ---

func taskCmd() *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Manage tasks"}
	task.AddCommand(taskCreateCmd())
	task.AddCommand(taskListCmd())
	task.AddCommand(taskShowCmd())
	task.AddCommand(taskUpdateCmd())
	task.AddCommand(taskDeleteCmd())
	return task
}

func taskCreateCmd() *cobra.Command {
	var in usecase.CreateTaskInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				t, err := env.Service.CreateTask(ctx, in)
				if err != nil {
					return err
				}
				return printJSONOrTable(t)
			})
		},
	}
	cmd.Flags().IntVar(&in.Code, "code", 0, "task code")
	cmd.Flags().StringVar(&in.Stage, "stage", "", "construction stage")
	cmd.Flags().StringVar(&in.Group, "group", "", "task group")
	cmd.Flags().StringVar(&in.Name, "name", "", "task name")
	cmd.Flags().StringVar(&in.Unit, "unit", "", "unit of measure")
	cmd.Flags().StringVar(&in.WorkID, "work", "", "owning work id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("work")
	return cmd
}

func taskListCmd() *cobra.Command {
	var q domain.PageQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.ListTasks(ctx, q)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(out.Total)
				tw.AppendHeader(table.Row{"ID", "Code", "Stage", "Group", "Name", "Unit", "Work"})
				for _, t := range out.Items {
					tw.AppendRow(table.Row{t.ID, t.Code, t.Stage, t.Group, t.Name, t.Unit, t.WorkID})
				}
				tw.Render()
				return nil
			})
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func taskShowCmd() *cobra.Command {
	return showCmd("task", func(ctx context.Context, env *app.Env, id string) (any, error) {
		return env.Service.GetTask(ctx, id)
	})
}

func taskUpdateCmd() *cobra.Command {
	var code int
	var stage, group, name, unit, work string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.TaskPatch{
				Stage:  changedString(cmd, "stage", stage),
				Group:  changedString(cmd, "group", group),
				Name:   changedString(cmd, "name", name),
				Unit:   changedString(cmd, "unit", unit),
				WorkID: changedString(cmd, "work", work),
			}
			if cmd.Flags().Changed("code") {
				p.Code = &code
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				t, err := env.Service.UpdateTask(ctx, args[0], p)
				if err != nil {
					return err
				}
				return printJSONOrTable(t)
			})
		},
	}
	cmd.Flags().IntVar(&code, "code", 0, "task code")
	cmd.Flags().StringVar(&stage, "stage", "", "construction stage")
	cmd.Flags().StringVar(&group, "group", "", "task group")
	cmd.Flags().StringVar(&name, "name", "", "task name")
	cmd.Flags().StringVar(&unit, "unit", "", "unit of measure")
	cmd.Flags().StringVar(&work, "work", "", "owning work id")
	return cmd
}

func taskDeleteCmd() *cobra.Command {
	return deleteCmd("task", func(ctx context.Context, env *app.Env, id string) error {
		return env.Service.DeleteTask(ctx, id)
	})
}

// --- productions ---

func productionCmd() *cobra.Command {
	prod := &cobra.Command{Use: "production", Short: "Manage productions"}
	prod.AddCommand(productionCreateCmd())
	prod.AddCommand(productionListCmd())
	prod.AddCommand(productionShowCmd())
	prod.AddCommand(productionUpdateCmd())
	prod.AddCommand(productionDeleteCmd())
	return prod
}

func productionCreateCmd() *cobra.Command {
	var in usecase.CreateProductionInput
	var status, comments, startTime, finalTime string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a production record",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Status = domain.ProductionStatus(status)
			in.Comments = changedString(cmd, "comments", comments)
			in.StartTime = changedString(cmd, "start-time", startTime)
			in.FinalTime = changedString(cmd, "final-time", finalTime)
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				p, err := env.Service.CreateProduction(ctx, in)
				if err != nil {
					return err
				}
				return printJSONOrTable(p)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "status (PLANNED, IN_PROGRESS, EXECUTED)")
	cmd.Flags().StringVar(&comments, "comments", "", "comments")
	cmd.Flags().StringVar(&startTime, "start-time", "", "start time")
	cmd.Flags().StringVar(&finalTime, "final-time", "", "final time")
	cmd.Flags().StringVar(&in.TaskID, "task", "", "task id")
	cmd.Flags().StringVar(&in.WorkID, "work", "", "work id")
	cmd.Flags().StringArrayVar(&in.TeamIDs, "team", []string{}, "participating team id (repeatable)")
	cmd.Flags().StringArrayVar(&in.TowerIDs, "tower", []string{}, "worked tower id (repeatable)")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("work")
	return cmd
}

func productionListCmd() *cobra.Command {
	var q domain.PageQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List productions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.ListProductions(ctx, q)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(out.Total)
				tw.AppendHeader(table.Row{"ID", "Status", "Task", "Work", "Teams", "Towers"})
				for _, p := range out.Items {
					tw.AppendRow(table.Row{p.ID, p.Status, p.TaskID, p.WorkID, len(p.Teams), len(p.Towers)})
				}
				tw.Render()
				return nil
			})
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func productionShowCmd() *cobra.Command {
	return showCmd("production", func(ctx context.Context, env *app.Env, id string) (any, error) {
		return env.Service.GetProduction(ctx, id)
	})
}

func productionUpdateCmd() *cobra.Command {
	var status, comments, startTime, finalTime, taskID, workID string
	var teams, towers []string
	var clearTeams, clearTowers bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a production record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.ProductionPatch{
				Comments:  changedString(cmd, "comments", comments),
				StartTime: changedString(cmd, "start-time", startTime),
				FinalTime: changedString(cmd, "final-time", finalTime),
				TaskID:    changedString(cmd, "task", taskID),
				WorkID:    changedString(cmd, "work", workID),
			}
			if cmd.Flags().Changed("status") {
				s := domain.ProductionStatus(status)
				p.Status = &s
			}
			if cmd.Flags().Changed("team") || clearTeams {
				p.TeamIDs = teams
				if clearTeams {
					p.TeamIDs = []string{}
				}
			}
			if cmd.Flags().Changed("tower") || clearTowers {
				p.TowerIDs = towers
				if clearTowers {
					p.TowerIDs = []string{}
				}
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.UpdateProduction(ctx, args[0], p)
				if err != nil {
					return err
				}
				return printJSONOrTable(out)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "status (PLANNED, IN_PROGRESS, EXECUTED)")
	cmd.Flags().StringVar(&comments, "comments", "", "comments (empty clears)")
	cmd.Flags().StringVar(&startTime, "start-time", "", "start time (empty clears)")
	cmd.Flags().StringVar(&finalTime, "final-time", "", "final time (empty clears)")
	cmd.Flags().StringVar(&taskID, "task", "", "task id")
	cmd.Flags().StringVar(&workID, "work", "", "work id")
	cmd.Flags().StringArrayVar(&teams, "team", []string{}, "replacement team id (repeatable)")
	cmd.Flags().StringArrayVar(&towers, "tower", []string{}, "replacement tower id (repeatable)")
	cmd.Flags().BoolVar(&clearTeams, "clear-teams", false, "remove all teams")
	cmd.Flags().BoolVar(&clearTowers, "clear-towers", false, "remove all towers")
	return cmd
}

func productionDeleteCmd() *cobra.Command {
	return deleteCmd("production", func(ctx context.Context, env *app.Env, id string) error {
		return env.Service.DeleteProduction(ctx, id)
	})
}

// --- users ---

func userCmd() *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "Manage API users"}
	user.AddCommand(userCreateCmd())
	user.AddCommand(userListCmd())
	user.AddCommand(userShowCmd())
	user.AddCommand(userUpdateCmd())
	user.AddCommand(userDeleteCmd())
	return user
}

func userCreateCmd() *cobra.Command {
	var in usecase.CreateUserInput
	var name string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = changedString(cmd, "name", name)
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				u, err := env.Service.CreateUser(ctx, in)
				if err != nil {
					return err
				}
				return printJSONOrTable(u)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func userListCmd() *cobra.Command {
	var q domain.PageQuery
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := env.Service.ListUsers(ctx, q)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				tw := newTable(out.Total)
				tw.AppendHeader(table.Row{"ID", "Name", "Email", "Created"})
				for _, u := range out.Items {
					tw.AppendRow(table.Row{u.ID, deref(u.Name), u.Email, u.CreatedAt})
				}
				tw.Render()
				return nil
			})
		},
	}
	addListFlags(cmd, &q)
	return cmd
}

func userShowCmd() *cobra.Command {
	return showCmd("user", func(ctx context.Context, env *app.Env, id string) (any, error) {
		return env.Service.GetUser(ctx, id)
	})
}

func userUpdateCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.UpdateUserInput{
				Name:     changedString(cmd, "name", name),
				Email:    changedString(cmd, "email", email),
				Password: changedString(cmd, "password", password),
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				u, err := env.Service.UpdateUser(ctx, args[0], in)
				if err != nil {
					return err
				}
				return printJSONOrTable(u)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (empty clears)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	return cmd
}

func userDeleteCmd() *cobra.Command {
	return deleteCmd("user", func(ctx context.Context, env *app.Env, id string) error {
		return env.Service.DeleteUser(ctx, id)
	})
}

// --- events ---

func logCmd() *cobra.Command {
	log := &cobra.Command{Use: "log", Short: "Inspect the event log"}
	log.AddCommand(logTailCmd())
	return log
}

func logTailCmd() *cobra.Command {
	var n int
	var evtType, entityKind, entityID string
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Tail events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				events, err := env.Repo.LatestEvents(ctx, n, evtType, entityKind, entityID)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(events)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"TS", "Type", "Kind", "Entity"})
				for _, e := range events {
					tw.AppendRow(table.Row{e.TS, e.Type, e.EntityKind, deref(e.EntityID)})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&n, "n", 20, "number of events")
	cmd.Flags().StringVar(&evtType, "type", "", "event type filter")
	cmd.Flags().StringVar(&entityKind, "entity-kind", "", "entity kind filter")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "entity id filter")
	return cmd
}

// --- serve ---

func serveCmd() *cobra.Command {
	var addr, basePath, adminEmail, adminPassword string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Open(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			defer env.Close()
			if adminEmail != "" {
				if err := env.EnsureAdmin(cmd.Context(), adminEmail, adminPassword); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("addr") && env.Config.Server.Addr != "" {
				addr = env.Config.Server.Addr
			}
			if !cmd.Flags().Changed("base-path") && env.Config.Server.BasePath != "" {
				basePath = env.Config.Server.BasePath
			}
			logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
			handler, err := server.New(server.Config{
				Service:  env.Service,
				Tokens:   env.Tokens,
				BasePath: basePath,
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			srv := &http.Server{Addr: addr, Handler: handler}
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			fmt.Printf("Serving Gridworks API on http://%s%s (OpenAPI at /openapi.json, Swagger UI at /docs)\n", addr, basePath)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "/api/v1", "API base path")
	cmd.Flags().StringVar(&adminEmail, "admin-email", "", "create this user on startup when missing")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "password for --admin-email")
	return cmd
}

// --- helpers ---

func withEnv(ctx context.Context, fn func(context.Context, *app.Env) error) error {
	env, err := app.Open(viper.GetString("workspace"))
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(ctx, env)
}

func showCmd(singular string, get func(context.Context, *app.Env, string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a " + singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				out, err := get(ctx, env, args[0])
				if err != nil {
					return err
				}
				return printJSONOrTable(out)
			})
		},
	}
}

func deleteCmd(singular string, del func(context.Context, *app.Env, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				return del(ctx, env, args[0])
			})
		},
	}
}

func addListFlags(cmd *cobra.Command, q *domain.PageQuery) {
	cmd.Flags().IntVar(&q.Page, "page", 0, "page number (1-based)")
	cmd.Flags().IntVar(&q.PerPage, "per-page", 0, "items per page")
	cmd.Flags().StringVar(&q.Sort, "sort", "", "sort field")
	cmd.Flags().StringVar(&q.SortDir, "sort-dir", "", "sort direction (asc, desc)")
	cmd.Flags().StringVar(&q.Filter, "filter", "", "free-text filter")
}

// changedString returns a pointer only when the flag was given, so update
// commands can tell "leave alone" from "set to this" (and from "clear",
// which is an explicitly empty value).
func changedString(cmd *cobra.Command, name, v string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func changedFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func newTable(total int) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetCaption("total: %d", total)
	return tw
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func printJSONOrTable(v any) error {
	if viper.GetBool("json") {
		return printJSON(v)
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

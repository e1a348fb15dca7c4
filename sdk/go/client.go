package gridworkssdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal Gridworks HTTP API client.
type Client struct {
	BaseURL     string
	BasePath    string
	BearerToken string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:  baseURL,
		BasePath: "api/v1",
		Timeout:  10 * time.Second,
	}
}

// List wraps paginated listings: the filter-wide total plus one page of items.
type List[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

// ListOptions narrows a listing. Zero values are omitted and the server
// applies its defaults (page 1, ten per page, newest first).
type ListOptions struct {
	Page    int
	PerPage int
	Sort    string
	SortDir string
	Filter  string
}

func (o ListOptions) query() string {
	v := url.Values{}
	if o.Page > 0 {
		v.Set("page", fmt.Sprint(o.Page))
	}
	if o.PerPage > 0 {
		v.Set("per_page", fmt.Sprint(o.PerPage))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.SortDir != "" {
		v.Set("sort_dir", o.SortDir)
	}
	if o.Filter != "" {
		v.Set("filter", o.Filter)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// Employee is a field worker assigned to at most one team.
type Employee struct {
	ID           string  `json:"id"`
	Registration string  `json:"registration"`
	FullName     string  `json:"full_name"`
	Occupation   string  `json:"occupation"`
	Leadership   bool    `json:"leadership"`
	Status       string  `json:"status"`
	TeamID       *string `json:"team_id"`
	CreatedAt    string  `json:"created_at"`
}

// Equipment is a machine or vehicle assigned to at most one team.
type Equipment struct {
	ID           string  `json:"id"`
	Registration string  `json:"registration"`
	Model        string  `json:"model"`
	Manufacturer string  `json:"manufacturer"`
	LicensePlate string  `json:"license_plate"`
	Provider     string  `json:"provider"`
	Status       string  `json:"status"`
	TeamID       *string `json:"team_id"`
	CreatedAt    string  `json:"created_at"`
}

// EmployeeSummary is the reduced employee view embedded in teams.
type EmployeeSummary struct {
	ID           string `json:"id"`
	Registration string `json:"registration"`
	FullName     string `json:"full_name"`
	Occupation   string `json:"occupation"`
}

// EquipmentSummary is the reduced equipment view embedded in teams.
type EquipmentSummary struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	LicensePlate string `json:"license_plate"`
}

// Team is a crew with its members expanded.
type Team struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Employees  []EmployeeSummary  `json:"employees"`
	Equipments []EquipmentSummary `json:"equipments"`
	CreatedAt  string             `json:"created_at"`
}

// Foundation is one footing of a tower.
type Foundation struct {
	ID               string   `json:"id"`
	TowerID          string   `json:"tower_id"`
	Project          string   `json:"project"`
	Revision         string   `json:"revision"`
	Description      string   `json:"description"`
	ExcavationVolume *float64 `json:"excavation_volume"`
	ConcreteVolume   *float64 `json:"concrete_volume"`
	BackfillVolume   *float64 `json:"backfill_volume"`
	SteelWeight      *float64 `json:"steel_weight"`
	CreatedAt        string   `json:"created_at"`
}

// Tower is a line structure with its foundations embedded.
type Tower struct {
	ID             string       `json:"id"`
	Code           int          `json:"code"`
	TowerNumber    string       `json:"tower_number"`
	Type           string       `json:"type"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	Height         *float64     `json:"height"`
	Weight         *float64     `json:"weight"`
	FoundationDate *string      `json:"foundation_date"`
	ErectionDate   *string      `json:"erection_date"`
	TensioningDate *string      `json:"tensioning_date"`
	Observations   *string      `json:"observations"`
	Hidden         bool         `json:"hidden"`
	WorkID         string       `json:"work_id"`
	Foundations    []Foundation `json:"foundations"`
	CreatedAt      string       `json:"created_at"`
}

// Task is a unit-priced construction activity within a work.
type Task struct {
	ID        string `json:"id"`
	Code      int    `json:"code"`
	Stage     string `json:"stage"`
	Group     string `json:"group"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	WorkID    string `json:"work_id"`
	CreatedAt string `json:"created_at"`
}

// Production is a daily execution record tying teams to towers.
type Production struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Comments  *string  `json:"comments"`
	StartTime *string  `json:"start_time"`
	FinalTime *string  `json:"final_time"`
	TaskID    string   `json:"task_id"`
	WorkID    string   `json:"work_id"`
	Teams     []string `json:"teams"`
	Towers    []string `json:"towers"`
	CreatedAt string   `json:"created_at"`
}

// Work is one transmission line under construction.
type Work struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Tension   *string `json:"tension"`
	Extension *string `json:"extension"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	CreatedAt string  `json:"created_at"`
}

// User is an API operator. The password never comes back.
type User struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Email     string  `json:"email"`
	CreatedAt string  `json:"created_at"`
}

// EmployeeCreate is the create request body for employees.
type EmployeeCreate struct {
	Registration string  `json:"registration"`
	FullName     string  `json:"full_name"`
	Occupation   string  `json:"occupation,omitempty"`
	Leadership   bool    `json:"leadership,omitempty"`
	Status       string  `json:"status,omitempty"`
	TeamID       *string `json:"team_id,omitempty"`
}

// EmployeeUpdate is the patch body for employees. Nil fields stay untouched;
// a pointer to the empty string clears an optional field.
type EmployeeUpdate struct {
	Registration *string `json:"registration,omitempty"`
	FullName     *string `json:"full_name,omitempty"`
	Occupation   *string `json:"occupation,omitempty"`
	Leadership   *bool   `json:"leadership,omitempty"`
	Status       *string `json:"status,omitempty"`
	TeamID       *string `json:"team_id,omitempty"`
}

type EquipmentCreate struct {
	Registration string  `json:"registration"`
	Model        string  `json:"model,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	LicensePlate string  `json:"license_plate,omitempty"`
	Provider     string  `json:"provider,omitempty"`
	Status       string  `json:"status,omitempty"`
	TeamID       *string `json:"team_id,omitempty"`
}

type EquipmentUpdate struct {
	Registration *string `json:"registration,omitempty"`
	Model        *string `json:"model,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty"`
	Provider     *string `json:"provider,omitempty"`
	Status       *string `json:"status,omitempty"`
	TeamID       *string `json:"team_id,omitempty"`
}

type TeamCreate struct {
	Name       string   `json:"name"`
	Employees  []string `json:"employees,omitempty"`
	Equipments []string `json:"equipments,omitempty"`
}

// TeamUpdate replaces whole membership arrays: nil leaves a side untouched,
// an empty non-nil slice clears it.
type TeamUpdate struct {
	Name       *string  `json:"name,omitempty"`
	Employees  []string `json:"employees,omitempty"`
	Equipments []string `json:"equipments,omitempty"`
}

type WorkCreate struct {
	Name      string  `json:"name"`
	Tension   *string `json:"tension,omitempty"`
	Extension *string `json:"extension,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

type WorkUpdate struct {
	Name      *string `json:"name,omitempty"`
	Tension   *string `json:"tension,omitempty"`
	Extension *string `json:"extension,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

type TowerCreate struct {
	Code           int      `json:"code,omitempty"`
	TowerNumber    string   `json:"tower_number"`
	Type           string   `json:"type,omitempty"`
	Latitude       float64  `json:"latitude,omitempty"`
	Longitude      float64  `json:"longitude,omitempty"`
	Height         *float64 `json:"height,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	FoundationDate *string  `json:"foundation_date,omitempty"`
	ErectionDate   *string  `json:"erection_date,omitempty"`
	TensioningDate *string  `json:"tensioning_date,omitempty"`
	Observations   *string  `json:"observations,omitempty"`
	Hidden         bool     `json:"hidden,omitempty"`
	WorkID         string   `json:"work_id"`
}

type TowerUpdate struct {
	Code           *int     `json:"code,omitempty"`
	TowerNumber    *string  `json:"tower_number,omitempty"`
	Type           *string  `json:"type,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Height         *float64 `json:"height,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	FoundationDate *string  `json:"foundation_date,omitempty"`
	ErectionDate   *string  `json:"erection_date,omitempty"`
	TensioningDate *string  `json:"tensioning_date,omitempty"`
	Observations   *string  `json:"observations,omitempty"`
	Hidden         *bool    `json:"hidden,omitempty"`
	WorkID         *string  `json:"work_id,omitempty"`
}

type FoundationCreate struct {
	TowerID          string   `json:"tower_id"`
	Project          string   `json:"project,omitempty"`
	Revision         string   `json:"revision,omitempty"`
	Description      string   `json:"description,omitempty"`
	ExcavationVolume *float64 `json:"excavation_volume,omitempty"`
	ConcreteVolume   *float64 `json:"concrete_volume,omitempty"`
	BackfillVolume   *float64 `json:"backfill_volume,omitempty"`
	SteelWeight      *float64 `json:"steel_weight,omitempty"`
}

type FoundationUpdate struct {
	Project          *string  `json:"project,omitempty"`
	Revision         *string  `json:"revision,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ExcavationVolume *float64 `json:"excavation_volume,omitempty"`
	ConcreteVolume   *float64 `json:"concrete_volume,omitempty"`
	BackfillVolume   *float64 `json:"backfill_volume,omitempty"`
	SteelWeight      *float64 `json:"steel_weight,omitempty"`
}

type TaskCreate struct {
	Code   int    `json:"code,omitempty"`
	Stage  string `json:"stage,omitempty"`
	Group  string `json:"group,omitempty"`
	Name   string `json:"name"`
	Unit   string `json:"unit,omitempty"`
	WorkID string `json:"work_id"`
}

type TaskUpdate struct {
	Code   *int    `json:"code,omitempty"`
	Stage  *string `json:"stage,omitempty"`
	Group  *string `json:"group,omitempty"`
	Name   *string `json:"name,omitempty"`
	Unit   *string `json:"unit,omitempty"`
	WorkID *string `json:"work_id,omitempty"`
}

type ProductionCreate struct {
	Status    string   `json:"status,omitempty"`
	Comments  *string  `json:"comments,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	FinalTime *string  `json:"final_time,omitempty"`
	TaskID    string   `json:"task_id"`
	WorkID    string   `json:"work_id"`
	Teams     []string `json:"teams,omitempty"`
	Towers    []string `json:"towers,omitempty"`
}

type ProductionUpdate struct {
	Status    *string  `json:"status,omitempty"`
	Comments  *string  `json:"comments,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	FinalTime *string  `json:"final_time,omitempty"`
	TaskID    *string  `json:"task_id,omitempty"`
	WorkID    *string  `json:"work_id,omitempty"`
	Teams     []string `json:"teams,omitempty"`
	Towers    []string `json:"towers,omitempty"`
}

type UserCreate struct {
	Name     *string `json:"name,omitempty"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// APIError wraps non-2xx responses. Code carries the machine-readable error
// code from the response envelope when one was present.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Login exchanges credentials for a bearer token and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	body := map[string]any{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "auth/login", body, &resp); err != nil {
		return User{}, err
	}
	c.BearerToken = resp.Token
	return resp.User, nil
}

// Health reports server liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "health", nil, nil)
}

func (c *Client) CreateEmployee(ctx context.Context, in EmployeeCreate) (Employee, error) {
	var resp Employee
	err := c.do(ctx, http.MethodPost, "employees", in, &resp)
	return resp, err
}

func (c *Client) GetEmployee(ctx context.Context, id string) (Employee, error) {
	var resp Employee
	err := c.do(ctx, http.MethodGet, "employees/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) ListEmployees(ctx context.Context, opts ListOptions) (List[Employee], error) {
	var resp List[Employee]
	err := c.do(ctx, http.MethodGet, "employees"+opts.query(), nil, &resp)
	return resp, err
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, in EmployeeUpdate) (Employee, error) {
	var resp Employee
	err := c.do(ctx, http.MethodPatch, "employees/"+url.PathEscape(id), in, &resp)
	return resp, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "employees/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateEquipment(ctx context.Context, in EquipmentCreate) (Equipment, error) {
	var resp Equipment
	err := c.do(ctx, http.MethodPost, "equipments", in, &resp)
	return resp, err
}

func (c *Client) GetEquipment(ctx context.Context, id string) (Equipment, error) {
	var resp Equipment
	err := c.do(ctx, http.MethodGet, "equipments/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) ListEquipments(ctx context.Context, opts ListOptions) (List[Equipment], error) {
	var resp List[Equipment]
	err := c.do(ctx, http.MethodGet, "equipments"+opts.query(), nil, &resp)
	return resp, err
}

func (c *Client) UpdateEquipment(ctx context.Context, id string, in EquipmentUpdate) (Equipment, error) {
	var resp Equipment
	err := c.do(ctx, http.MethodPatch, "equipments/"+url.PathEscape(id), in, &resp)
	return resp, err
}

func (c *Client) DeleteEquipment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "equipments/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateTeam(ctx context.Context, in TeamCreate) (Team, error) {
	var resp Team
	err := c.do(ctx, http.MethodPost, "teams", in, &resp)
	return resp, err
}

func (c *Client) GetTeam(ctx context.Context, id string) (Team, error) {
	var resp Team
	err := c.do(ctx, http.MethodGet, "teams/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) ListTeams(ctx context.Context, opts ListOptions) (List[Team], error) {
	var resp List[Team]
	err := c.do(ctx, http.MethodGet, "teams"+opts.query(), nil, &resp)
	return resp, err
}

func (c *Client) UpdateTeam(ctx context.Context, id string, in TeamUpdate) (Team, error) {
	var resp Team
	err := c.do(ctx, http.MethodPatch, "teams/"+url.PathEscape(id), in, &resp)
	return resp, err
}

func (c *Client) DeleteTeam(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "teams/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateWork(ctx context.Context, in WorkCreate) (Work, error) {
	var resp Work
	err := c.do(ctx, http.MethodPost, "works", in, &resp)
	return resp, err
}

func (c *Client) GetWork(ctx context.Context, id string) (Work, error) {
	var resp Work
	err := c.do(ctx, http.MethodGet, "works/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) ListWorks(ctx context.Context, opts ListOptions) (List[Work], error) {
	var resp List[Work]
	err := c.do(ctx, http.MethodGet, "works"+opts.query(), nil, &resp)
	return resp, err
}

func (c *Client) UpdateWork(ctx context.Context, id string, in WorkUpdate) (Work, error) {
	var resp Work
	err := c.do(ctx, http.MethodPatch, "works/"+url.PathEscape(id), in, &resp)
	return resp, err
}

func (c *Client) DeleteWork(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "works/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateTower(ctx context.Context, in TowerCreate) (Tower, error) {
	var resp Tower
	err := c.do(ctx, http.MethodPost, "towers", in, &resp)
	return resp, err
}

func (c *Client) GetTower(ctx context.Context, id string) (Tower, error) {
	var resp Tower
	err := c.do(ctx, http.MethodGet, "towers/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) ListTowers(ctx context.Context, opts ListOptions) (List[Tower], error) {
	var resp List[Tower]
	err := c.do(ctx, http.MethodGet, "towers"+opts.query(), nil, &resp)
	return resp, err
}

func (c *Client) UpdateTower(ctx context.Context, id string, in TowerUpdate) (Tower, error) {
	var resp Tower
	err := c.do(ctx, http.MethodPatch, "towers/"+url.PathEscape(id), in, &resp)
	return resp, err
}

func (c *Client) DeleteTower(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "towers/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateFoundation(ctx context.Context, in FoundationCreate) (Foundation, error) {
	var resp Foundation
	err := c.do(ctx, http.MethodPost, "foundations", in, &resp)
	return resp, err
}

func (c *Client) GetFoundation(ctx context.Context, id string) (Foundation, error) {
	var resp Foundation
	err := c.do(ctx, http.MethodGet, "foundations/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) ListFoundations(ctx context.Context, opts ListOptions) (List[Foundation], error) {
	var resp List[Foundation]
	err := c.do(ctx, http.MethodGet, "foundations"+opts.query(), nil, &resp)
	return resp, err
}

func (c *Client) UpdateFoundation(ctx context.Context, id string, in FoundationUpdate) (Foundation, error) {
	var resp Foundation
	err := c.do(ctx, http.MethodPatch, "foundations/"+url.PathEscape(id), in, &resp)
	return resp, err
}

func (c *Client) DeleteFoundation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "foundations/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateTask(ctx context.Context, in TaskCreate) (Task, error) {
	var resp Task
	err := c.do(ctx, http.MethodPost, "tasks", in, &resp)
	return resp, err
}

func (c *Client) GetTask(ctx context.Context, id string) (Task, error) {
	var resp Task
	err := c.do(ctx, http.MethodGet, "tasks/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) ListTasks(ctx context.Context, opts ListOptions) (List[Task], error) {
	var resp List[Task]
	err := c.do(ctx, http.MethodGet, "tasks"+opts.query(), nil, &resp)
	return resp, err
}

func (c *Client) UpdateTask(ctx context.Context, id string, in TaskUpdate) (Task, error) {
	var resp Task
	err := c.do(ctx, http.MethodPatch, "tasks/"+url.PathEscape(id), in, &resp)
	return resp, err
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "tasks/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateProduction(ctx context.Context, in ProductionCreate) (Production, error) {
	var resp Production
	err := c.do(ctx, http.MethodPost, "productions", in, &resp)
	return resp, err
}

func (c *Client) GetProduction(ctx context.Context, id string) (Production, error) {
	var resp Production
	err := c.do(ctx, http.MethodGet, "productions/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) ListProductions(ctx context.Context, opts ListOptions) (List[Production], error) {
	var resp List[Production]
	err := c.do(ctx, http.MethodGet, "productions"+opts.query(), nil, &resp)
	return resp, err
}

func (c *Client) UpdateProduction(ctx context.Context, id string, in ProductionUpdate) (Production, error) {
	var resp Production
	err := c.do(ctx, http.MethodPatch, "productions/"+url.PathEscape(id), in, &resp)
	return resp, err
}

func (c *Client) DeleteProduction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "productions/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateUser(ctx context.Context, in UserCreate) (User, error) {
	var resp User
	err := c.do(ctx, http.MethodPost, "users", in, &resp)
	return resp, err
}

func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	var resp User
	err := c.do(ctx, http.MethodGet, "users/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

func (c *Client) ListUsers(ctx context.Context, opts ListOptions) (List[User], error) {
	var resp List[User]
	err := c.do(ctx, http.MethodGet, "users"+opts.query(), nil, &resp)
	return resp, err
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UserUpdate) (User, error) {
	var resp User
	err := c.do(ctx, http.MethodPatch, "users/"+url.PathEscape(id), in, &resp)
	return resp, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "users/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	target := c.base() + "/" + strings.Trim(c.BasePath, "/") + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, target, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(b)}
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(b, &envelope) == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}

package domain

// Employee is a field worker assigned to at most one team.
type Employee struct {
	ID           string         `json:"id"`
	Registration string         `json:"registration"`
	FullName     string         `json:"full_name"`
	Occupation   string         `json:"occupation"`
	Leadership   bool           `json:"leadership"`
	Status       EmployeeStatus `json:"status" enum:"ACTIVE,ON_LEAVE,INACTIVE"`
	TeamID       *string        `json:"team_id"`
	CreatedAt    string         `json:"created_at" format:"date-time"`
}

// Equipment is a machine or vehicle assigned to at most one team.
type Equipment struct {
	ID           string          `json:"id"`
	Registration string          `json:"registration"`
	Model        string          `json:"model"`
	Manufacturer string          `json:"manufacturer"`
	LicensePlate string          `json:"license_plate"`
	Provider     string          `json:"provider"`
	Status       EquipmentStatus `json:"status" enum:"ACTIVE,MAINTENANCE,INACTIVE"`
	TeamID       *string         `json:"team_id"`
	CreatedAt    string          `json:"created_at" format:"date-time"`
}

// Team groups employees and equipment. Membership lives on the members
// themselves (Employee.TeamID / Equipment.TeamID); reads resolve the
// membership and project it into summaries.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at" format:"date-time"`
}

// Foundation is the concrete base of a tower. Foundations are never
// referenced outside their tower, so tower reads embed them in full.
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
	CreatedAt        string   `json:"created_at" format:"date-time"`
}

// Tower is a transmission-line structure belonging to a work.
type Tower struct {
	ID             string   `json:"id"`
	Code           int      `json:"code"`
	TowerNumber    string   `json:"tower_number"`
	Type           string   `json:"type"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Height         *float64 `json:"height"`
	Weight         *float64 `json:"weight"`
	FoundationDate *string  `json:"foundation_date" format:"date-time"`
	ErectionDate   *string  `json:"erection_date" format:"date-time"`
	TensioningDate *string  `json:"tensioning_date" format:"date-time"`
	Observations   *string  `json:"observations"`
	Hidden         bool     `json:"hidden"`
	WorkID         string   `json:"work_id"`
	CreatedAt      string   `json:"created_at" format:"date-time"`
}

// Task is a unit-priced activity of a work (e.g. excavation per m3).
type Task struct {
	ID        string `json:"id"`
	Code      int    `json:"code"`
	Stage     string `json:"stage"`
	Group     string `json:"group"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	WorkID    string `json:"work_id"`
	CreatedAt string `json:"created_at" format:"date-time"`
}

// Production records the execution of a task by teams on towers. Team and
// tower references are bare id lists, never expanded.
type Production struct {
	ID        string           `json:"id"`
	Status    ProductionStatus `json:"status" enum:"PLANNED,IN_PROGRESS,EXECUTED"`
	Comments  *string          `json:"comments"`
	StartTime *string          `json:"start_time" format:"date-time"`
	FinalTime *string          `json:"final_time" format:"date-time"`
	TaskID    string           `json:"task_id"`
	WorkID    string           `json:"work_id"`
	TeamIDs   []string         `json:"team_ids"`
	TowerIDs  []string         `json:"tower_ids"`
	CreatedAt string           `json:"created_at" format:"date-time"`
}

// Work is a construction contract owning tasks, towers and productions.
type Work struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Tension   *string `json:"tension"`
	Extension *string `json:"extension"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	CreatedAt string  `json:"created_at" format:"date-time"`
}

// User is an authenticated operator. PasswordHash never leaves the
// repository and use-case boundary.
type User struct {
	ID           string  `json:"id"`
	Name         *string `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	CreatedAt    string  `json:"created_at" format:"date-time"`
}

// EmployeeSummary is the reduced read-only view of an employee embedded in
// team output.
type EmployeeSummary struct {
	ID           string `json:"id"`
	Registration string `json:"registration"`
	FullName     string `json:"full_name"`
	Occupation   string `json:"occupation"`
}

// EquipmentSummary is the reduced read-only view of an equipment embedded in
// team output.
type EquipmentSummary struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	LicensePlate string `json:"license_plate"`
}

// Event is one audit log entry. Payload holds the raw JSON recorded with
// the mutation.
type Event struct {
	ID         int64   `json:"id"`
	TS         string  `json:"ts"`
	Type       string  `json:"type"`
	EntityKind string  `json:"entity_kind"`
	EntityID   *string `json:"entity_id"`
	ActorID    *string `json:"actor_id"`
	Payload    string  `json:"payload"`
}

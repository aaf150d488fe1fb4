package voice

// Slot identifiers shared by the catalog, the extractor, the follow-up
// resolver, and the execution handler.
const (
	SlotTitle      = "title"
	SlotDate       = "date"
	SlotTime       = "time"
	SlotAmount     = "amount"
	SlotPerson     = "person"
	SlotMember     = "member"
	SlotPet        = "pet"
	SlotItem       = "item"
	SlotLocation   = "location"
	SlotRecurrence = "recurrence"
	SlotRange      = "range"
	SlotURL        = "url"
	SlotQuery      = "query"
	SlotMealType   = "meal_type"
	SlotTaskRef    = "task_ref"
	SlotEventRef   = "event_ref"
	SlotReason     = "reason"
	SlotCategory   = "category"
	SlotScreen     = "screen"
)

// UI routes used as execution destination hints.
const (
	RouteTasks    = "/tasks"
	RouteCalendar = "/calendar"
	RouteMeals    = "/meals"
	RouteFinances = "/finances"
	RoutePets     = "/pets"
	RouteNotes    = "/notes"
	RouteFamily   = "/family"
	RouteRelay    = "/"
)

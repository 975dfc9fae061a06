package adapter

// Entry is one row of a declarative menu. A zero ID with Separator set draws
// a divider.
type Entry struct {
	ID          string
	Label       string
	Tooltip     string
	Accelerator string
	Separator   bool
}

// Submenu roles. Edit and window are supplied by the platform menu. The app
// menu is built from its entries and only shown on macOS; the native app
// role is not used because its Hide items bypass the window tracker.
const (
	RoleAppMenu    = "app"
	RoleEditMenu   = "edit"
	RoleWindowMenu = "window"
)

// Submenu is a top-level application menu
type Submenu struct {
	Label   string
	Role    string
	Entries []Entry
}

var separator = Entry{Separator: true}

// TrayLayout is the tray context menu, top to bottom.
func TrayLayout() []Entry {
	return []Entry{
		{ID: TrayNewTask, Label: "New Task", Tooltip: "Create a task", Accelerator: "CmdOrCtrl+Shift+T"},
		{ID: TrayToday, Label: "Today View", Tooltip: "Open today"},
		{ID: TrayCalendar, Label: "Calendar", Tooltip: "Open the calendar"},
		separator,
		{ID: TrayShowHide, Label: "Show/Hide Window", Tooltip: "Toggle the main window", Accelerator: "CmdOrCtrl+Shift+O"},
		separator,
		{ID: TraySettings, Label: "Settings...", Tooltip: "Open settings"},
		{ID: TrayQuit, Label: "Quit Open Sunsama", Tooltip: "Quit the application", Accelerator: "CmdOrCtrl+Q"},
	}
}

// MenuLayout is the application menu bar.
func MenuLayout() []Submenu {
	return []Submenu{
		{Label: "Open Sunsama", Role: RoleAppMenu, Entries: []Entry{
			{ID: MenuSettings, Label: "Preferences...", Accelerator: "CmdOrCtrl+,"},
			separator,
			{ID: MenuQuit, Label: "Quit Open Sunsama", Accelerator: "CmdOrCtrl+Q"},
		}},
		{Label: "File", Entries: []Entry{
			{ID: MenuNewTask, Label: "New Task", Accelerator: "CmdOrCtrl+N"},
			{ID: MenuSettings, Label: "Settings..."},
		}},
		{Label: "Edit", Role: RoleEditMenu},
		{Label: "View", Entries: []Entry{
			{ID: MenuTodayView, Label: "Today", Accelerator: "CmdOrCtrl+1"},
			{ID: MenuCalendarView, Label: "Calendar", Accelerator: "CmdOrCtrl+2"},
			separator,
			{ID: MenuReload, Label: "Reload", Accelerator: "CmdOrCtrl+R"},
		}},
		{Label: "Window", Role: RoleWindowMenu},
		{Label: "Help", Entries: []Entry{
			{ID: MenuDocumentation, Label: "Documentation"},
			separator,
			{ID: MenuReportIssue, Label: "Report Issue"},
		}},
	}
}

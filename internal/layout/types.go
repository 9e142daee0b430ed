package layout

// Mode selects the geometry used when a view holds both a text and a list
// container. The zero value is the stacked split.
type Mode string

const (
	ModeStackedSplit Mode = ""
	ModeTwoColumn    Mode = "two-column"
	ModeListFooter   Mode = "list-footer"
)

// ViewModel is the resolution-independent description of one screen.
// Container order decides geometry role and event-capture priority.
type ViewModel struct {
	Title      string
	LayoutMode Mode
	Containers []Container
}

// Container is implemented by *TextContainer and *ListContainer only.
type Container interface {
	kind() kind
	capturesEvents() bool
}

type kind int

const (
	kindText kind = iota
	kindList
)

// TextContainer is a block of literal text.
type TextContainer struct {
	ID           string
	Content      string
	EventCapture bool
}

func (c *TextContainer) kind() kind           { return kindText }
func (c *TextContainer) capturesEvents() bool { return c.EventCapture }

// ListContainer is a selectable list of labels.
type ListContainer struct {
	ID            string
	Title         string
	Items         []string
	SelectedIndex int
	EventCapture  bool
}

func (c *ListContainer) kind() kind           { return kindList }
func (c *ListContainer) capturesEvents() bool { return c.EventCapture }

// Identity is the fixed device id/name pair of a container kind.
type Identity struct {
	ID   int    `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// ContainerIDs holds the identity of each container kind.
type ContainerIDs struct {
	Text Identity
	List Identity
}

// DefaultContainerIDs is used when configuration does not supply identities.
var DefaultContainerIDs = ContainerIDs{
	Text: Identity{ID: 1, Name: "main-text"},
	List: Identity{ID: 2, Name: "main-list"},
}

// Payload is the device container set. Empty categories are omitted from the
// wire form; ContainerTotalNum always equals len(TextObject)+len(ListObject).
type Payload struct {
	TextObject        []TextObject `json:"textObject,omitempty"`
	ListObject        []ListObject `json:"listObject,omitempty"`
	ContainerTotalNum int          `json:"containerTotalNum"`
}

// TextObject is a positioned text container descriptor. The borderRdaius
// spelling is the device's wire name.
type TextObject struct {
	XPosition      int    `json:"xPosition"`
	YPosition      int    `json:"yPosition"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	BorderWidth    int    `json:"borderWidth"`
	BorderRadius   int    `json:"borderRdaius"`
	PaddingLength  int    `json:"paddingLength"`
	ContainerID    int    `json:"containerID"`
	ContainerName  string `json:"containerName"`
	Content        string `json:"content"`
	IsEventCapture int    `json:"isEventCapture"`
}

// ListObject is a positioned list container descriptor.
type ListObject struct {
	XPosition      int           `json:"xPosition"`
	YPosition      int           `json:"yPosition"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	ContainerID    int           `json:"containerID"`
	ContainerName  string        `json:"containerName"`
	IsEventCapture int           `json:"isEventCapture"`
	ItemContainer  ItemContainer `json:"itemContainer"`
}

// ItemContainer describes the items of a list container.
type ItemContainer struct {
	ItemCount            int      `json:"itemCount"`
	ItemWidth            int      `json:"itemWidth"`
	IsItemSelectBorderEn int      `json:"isItemSelectBorderEn"`
	ItemName             []string `json:"itemName"`
}

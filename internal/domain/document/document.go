// Package document define el árbol declarativo de un reporte imprimible.
//
// Un Document es dato puro: se construye una vez, se entrega al renderer y
// se descarta. Ningún tipo de este paquete tiene comportamiento más allá de
// accesores triviales; las unidades de longitud son puntos tipográficos (pt).
package document

// Color en notación hexadecimal "#rrggbb". El valor vacío significa "sin color".
type Color string

// None indica ausencia de relleno.
const None Color = ""

// Orientation de la página.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Align alineación horizontal de un bloque.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Margins en orden izquierda, arriba, derecha, abajo.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Page configuración a nivel de página.
type Page struct {
	Size        string // "A4"
	Orientation Orientation
	Margins     Margins
	Background  Color
}

// Style atributos tipográficos referenciados por nombre desde los bloques.
type Style struct {
	FontSize      float64
	Bold          bool
	Italic        bool
	Color         Color
	Fill          Color
	Align         Align
	LetterSpacing float64
}

// StyleRegistry mapea nombre de estilo → atributos.
type StyleRegistry map[string]Style

// Document raíz del árbol.
type Document struct {
	Page    Page
	Content []Block
	Styles  StyleRegistry
}

// Block es cualquiera de Text, Image, Table, Line o Columns.
type Block interface {
	Kind() Kind
}

// Kind discrimina el tipo de bloque.
type Kind string

const (
	KindText    Kind = "text"
	KindImage   Kind = "image"
	KindTable   Kind = "table"
	KindLine    Kind = "line"
	KindColumns Kind = "columns"
)

// Text párrafo de una sola cadena.
type Text struct {
	Value          string
	Style          string
	Margin         Margins
	Underline      bool
	UnderlineColor Color
}

// Image raster embebido (PNG o JPG).
type Image struct {
	Data   []byte
	Format string // "png" | "jpg"
	Width  float64
	Height float64
	Align  Align
	Margin Margins
}

// Width ancho de columna: fijo en pt, o Star para repartir el resto.
type Width struct {
	Points float64
	Star   bool
}

// Fixed ancho fijo en puntos.
func Fixed(pt float64) Width { return Width{Points: pt} }

// Star ancho flexible ("*").
func Star() Width { return Width{Star: true} }

// Cell celda de tabla.
type Cell struct {
	Text  string
	Style string
}

// TableLayout bordes y padding comunes a todas las celdas.
type TableLayout struct {
	LineColor Color
	LineWidth float64
	PaddingX  float64
	PaddingY  float64
}

// Table tabla con filas de cabecera. Rows incluye la cabecera en las primeras
// HeaderRows posiciones; Fills[i] es el relleno de Rows[i].
type Table struct {
	Widths     []Width
	HeaderRows int
	Rows       [][]Cell
	Fills      []Color
	Layout     TableLayout
	Margin     Margins
}

// Line regla horizontal.
type Line struct {
	Thickness float64
	Color     Color
	Margin    Margins
}

// Column par etiqueta/valor dentro de un bloque Columns. Width 0 = resto.
type Column struct {
	Text  string
	Style string
	Width float64
}

// Columns fila de textos lado a lado.
type Columns struct {
	Items  []Column
	Margin Margins
}

func (Text) Kind() Kind    { return KindText }
func (Image) Kind() Kind   { return KindImage }
func (Table) Kind() Kind   { return KindTable }
func (Line) Kind() Kind    { return KindLine }
func (Columns) Kind() Kind { return KindColumns }

// ColumnCount devuelve el número de columnas declarado por los anchos.
func (t Table) ColumnCount() int { return len(t.Widths) }

package model

// Имена плейсхолдеров шаблона
const (
	ClassName  = "className"
	Field1Type = "field1Type"
	Field1Name = "field1Name"
	Field2Type = "field2Type"
	Field2Name = "field2Name"
)

// ClassNames - возможные имена генерируемого класса
var ClassNames = []string{"Külmkapp", "Säilik", "Toiduaine", "Roog"}

// FieldTypes - возможные типы полей
var FieldTypes = []string{"List<Roog>", "String", "Säilik", "int"}

// FieldNames - возможные имена полей
var FieldNames = []string{"nimi", "säilivus", "sisu", "koostisained", "vajabTähelepanu"}

// Placeholder связывает имя плейсхолдера со списком кандидатов
type Placeholder struct {
	Name       string
	Candidates []string
}

// DefaultPlaceholders возвращает плейсхолдеры шаблона в порядке розыгрыша
func DefaultPlaceholders() []Placeholder {
	return []Placeholder{
		{Name: ClassName, Candidates: ClassNames},
		{Name: Field1Type, Candidates: FieldTypes},
		{Name: Field1Name, Candidates: FieldNames},
		{Name: Field2Type, Candidates: FieldTypes},
		{Name: Field2Name, Candidates: FieldNames},
	}
}

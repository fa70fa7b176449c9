package schema

// FieldTypeInfo describes a field type for pickers and help output.
type FieldTypeInfo struct {
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
}

var fieldTypes = []FieldTypeInfo{
	{TypeString, "String", "Random text within the configured length range"},
	{TypeNumber, "Number", "Integer or decimal between min and max"},
	{TypeBoolean, "Boolean", "true or false"},
	{TypeDate, "Date", "Calendar date (YYYY-MM-DD) within the last year"},
	{TypeEmail, "Email", "Email address"},
	{TypeUUID, "UUID", "Random version 4 UUID"},
	{TypePhone, "Phone", "Phone number"},
	{TypeURL, "URL", "Web address"},
	{TypeFirstName, "First Name", "Person's given name"},
	{TypeLastName, "Last Name", "Person's family name"},
	{TypeFullName, "Full Name", "First and last name"},
	{TypeAddress, "Address", "Street address"},
	{TypeCity, "City", "City name"},
	{TypeCountry, "Country", "Country name"},
	{TypeZipCode, "Zip Code", "Postal code"},
	{TypeCompany, "Company", "Company name"},
	{TypeLorem, "Lorem Ipsum", "Placeholder sentence"},
	{TypeEnum, "Enum", "One of the configured enum values"},
	{TypeArray, "Array", "List of items built from the item configuration"},
	{TypeObject, "Object", "Nested object built from the nested fields"},
}

// FieldTypes lists every field type in display order.
func FieldTypes() []FieldTypeInfo {
	out := make([]FieldTypeInfo, len(fieldTypes))
	copy(out, fieldTypes)
	return out
}

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	for _, info := range fieldTypes {
		if info.Type == t {
			return true
		}
	}
	return false
}

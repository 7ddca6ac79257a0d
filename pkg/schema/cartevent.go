package schema

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_event",
	"fields" : [
		{"name": "model", "type": "string"},
		{"name": "brand", "type": "string"},
		{"name": "price", "type": "double"}
	]
}`

type CartEventV1 struct {
	Model string  `avro:"model"`
	Brand string  `avro:"brand"`
	Price float64 `avro:"price"`
}

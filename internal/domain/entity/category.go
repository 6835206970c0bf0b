package entity

// Categories conjunto fijo de categorías de artículos (heredado de la hoja
// de inventario original del hotel).
var Categories = []string{
	"主題商品",
	"客房備品",
	"客房用品",
	"櫃台耗材",
	"櫃台贈品",
	"文具",
	"包裝材料",
	"禮品櫃",
	"醫藥箱",
	"安全與設施",
	"其他",
}

// IsValidCategory indica si la categoría pertenece al conjunto fijo.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

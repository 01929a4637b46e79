package entity

// Roles del sistema (acceso por código de caja, sin cuentas individuales).
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User operador autenticado por código de acceso.
// Session identifica el login (una terminal); varios logins con el mismo código comparten rol
// pero no carrito.
type User struct {
	ID      string
	Name    string
	Role    string // admin, cashier
	Session string
}

// CartOwner clave de los carritos del operador: la sesión si existe, si no el ID.
func (u User) CartOwner() string {
	if u.Session != "" {
		return u.Session
	}
	return u.ID
}

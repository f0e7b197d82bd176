package dto

// CEPAddressDTO dirección devuelta por GET /api/cep/:cep, lista para autocompletar formularios.
type CEPAddressDTO struct {
	CEP      string `json:"cep"`
	Street   string `json:"rua"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	State    string `json:"estado"`
}

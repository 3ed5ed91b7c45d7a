package containers

// Logistics statuses a container moves through. Values are upstream wire
// literals and drive pickup-address resolution.
const (
	StatusNewOrder  = "New Order"
	StatusYardFull  = "Yard(F)"
	StatusClient    = "Client"
	StatusYardEmpty = "Yard(E)"
	StatusEmptyPark = "Empty Park"
)

// Container is a shipping-container logistics record. Every field is a raw
// string from the upstream system, including the date fields: formats are
// inconsistent there, so parsing happens lazily at query time and may yield
// no value. JSON keys preserve the upstream spellings (doorPositon,
// RequestDeliverDate) so existing consumers keep working.
type Container struct {
	CtnNumber          string `json:"ctnNumber"`
	LogisticsStatus    string `json:"logisticsStatus"`
	FullClientName     string `json:"fullClientName"`
	FullDeliverAddress string `json:"fullDeliverAddress"`
	DeliverType        string `json:"deliverType"`
	DoorPosition       string `json:"doorPositon"`
	FullVesselName     string `json:"fullVesselName"`
	CtnType            string `json:"ctnType"`
	CtnWeight          string `json:"ctnWeight"`
	Remark             string `json:"remark"`
	FreightForwarders  string `json:"freightForwarders"`
	Terminal           string `json:"terminal"`
	ETA                string `json:"eta"`
	ETD                string `json:"etd"`
	FirstFree          string `json:"firstFree"`
	LastFree           string `json:"lastFree"`
	LastDention        string `json:"lastDention"`
	DischargeTime      string `json:"dischargeTime"`
	GateoutTime        string `json:"gateoutTime"`
	EdoPin             string `json:"edoPin"`
	ShippingLine       string `json:"shippingLine"`
	EmptyPark          string `json:"emptyPark"`
	PickUpDate         string `json:"pickUpDate"`
	DeliverDate        string `json:"deliverDate"`
	PickEmptyDate      string `json:"pickEmptyDate"`
	DehireDate         string `json:"dehireDate"`
	PlanPickUpDate     string `json:"planPickUpDate"`
	PlanDeliverDate    string `json:"planDeliverDate"`
	PlanPickEmptyDate  string `json:"planPickEmptyDate"`
	PlanDehireDate     string `json:"planDehireDate"`
	RequestDeliverDate string `json:"RequestDeliverDate"`
}

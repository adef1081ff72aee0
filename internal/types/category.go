// README: Service category vocabulary shared by requests, catalog and marketplace.
package types

type ServiceCategory string

const (
	CategoryPlumbing        ServiceCategory = "Plumbing"
	CategoryElectrical      ServiceCategory = "Electrical"
	CategoryApplianceRepair ServiceCategory = "Appliance Repair"
	CategoryACRepair        ServiceCategory = "AC Repair"
	CategoryGeyserRepair    ServiceCategory = "Geyser Repair"
	CategoryTVRepair        ServiceCategory = "TV Repair"
	CategoryCarpentry       ServiceCategory = "Carpentry"
	CategoryPainting        ServiceCategory = "Painting"
	CategoryOther           ServiceCategory = "Other"
)

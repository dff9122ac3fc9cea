package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Parkinsons Variant Viewer Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Parkinsons Variant Viewer API!"
	SERVICE_DESCRIPTION ServiceInfo = "Variant input/output store with ClinVar-backed annotation."

	SERVICE_ARTIFACT    ServiceInfo = "pvv"
	SERVICE_VERSION     ServiceInfo = "0.0.1"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("com.github.patricklahert:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)

package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hades/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{selectedEntityId: ecs.InvalidEntity}
}

func (ci *ComponentInspectorComponent) Render(w *ecs.World, selectedEntityId ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if ci.selectedEntityId != selectedEntityId {
		ci.lastErr = nil
	}
	ci.selectedEntityId = selectedEntityId

	if !ci.selectedEntityId.Valid() {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	sig, err := w.Signature(ci.selectedEntityId)
	if err != nil {
		imgui.Text(fmt.Sprintf("Entity %d is not alive", ci.selectedEntityId))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", ci.selectedEntityId))
	imgui.Text(fmt.Sprintf("Signature: %s", sig))
	imgui.Separator()

	registry := w.Registry()
	for _, ct := range sig.Types() {
		component, err := w.Components().GetAny(ct, ci.selectedEntityId)
		if err != nil {
			continue
		}

		if imgui.TreeNodeStr(registry.Name(ct)) {
			ci.renderComponent(component)
			imgui.TreePop()
		}
	}

	imgui.Separator()
	// render functions run from the command flush, after every system
	if imgui.Button("Destroy Entity") {
		ci.lastErr = w.DestroyEntity(ci.selectedEntityId)
	}
	if ci.lastErr != nil {
		imgui.TextWrapped(ci.lastErr.Error())
	}

	imgui.End()
}

// renderComponent draws an editor for every exported field of component, a
// pointer handed out by the component store. Edits write straight through it.
func (ci *ComponentInspectorComponent) renderComponent(component any) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		ci.renderField("value", val)
		return
	}

	for _, field := range inspectableFields(val.Type()) {
		ci.renderStructField(val, field)
	}
}

func (ci *ComponentInspectorComponent) renderStructField(parent reflect.Value, field inspectableField) {
	val := parent.Field(field.index)
	if field.pointer {
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", field.name))
			return
		}
		val = val.Elem()
	}
	ci.renderField(field.name, val)
}

func (ci *ComponentInspectorComponent) renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		labelled(name, 150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		labelled(name, 150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		labelled(name, 150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		labelled(name, 200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, field := range inspectableFields(val.Type()) {
				ci.renderStructField(val, field)
			}
			imgui.TreePop()
		}

	case reflect.Array:
		if imgui.TreeNodeStr(fmt.Sprintf("%s [%d]", name, val.Len())) {
			for i := 0; i < val.Len(); i++ {
				ci.renderField(fmt.Sprintf("%s[%d]", name, i), val.Index(i))
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func labelled(name string, width float32) {
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(width)
}

// inspectableField is an exported struct field the inspector can show.
type inspectableField struct {
	name    string
	index   int
	pointer bool
}

// fieldsByType is only touched from the render path, which runs on the
// World's goroutine.
var fieldsByType = make(map[reflect.Type][]inspectableField)

// inspectableFields returns the exported fields of the struct type t, cached per type.
func inspectableFields(t reflect.Type) []inspectableField {
	if fields, ok := fieldsByType[t]; ok {
		return fields
	}

	var fields []inspectableField
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, inspectableField{
				name:    field.Name,
				index:   i,
				pointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}
	fieldsByType[t] = fields
	return fields
}

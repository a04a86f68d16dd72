// Package console implementa el patrón de sincronización de estado de las pantallas de
// administración: un Store en memoria por recurso, un formulario con validación por campo,
// el flujo de mutación idle → submitting → (succeeded | failed) y la búsqueda de nombres de
// categoría para la pantalla de productos.
//
// Las pantallas no conocen HTTP ni plantillas: reciben un Gateway ya construido y exponen
// una vista de solo lectura (View) que la consola web y el CLI renderizan.
package console
